package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fraudshield/backend-go/internal/services"
)

// DetectionController serves deepfake analysis uploads and history.
// Analyze is open; the per-user history endpoints require login.
type DetectionController struct {
	BaseController
}

// Analyze handles POST /api/detection/analyze. Expects a multipart form
// with a "file" part and an optional "mediaType" field. Nothing is
// persisted; clients save results to history explicitly.
func (c *DetectionController) Analyze() {
	file, header, err := c.GetFile("file")
	if err != nil {
		c.JSONError(http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	media, err := io.ReadAll(file)
	if err != nil {
		c.JSONError(http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	mediaType := c.GetString("mediaType", "image")
	contentType := header.Header.Get("Content-Type")

	result, err := getDetectionService().Analyze(
		c.Ctx.Request.Context(), mediaType, header.Filename, contentType, media)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(result)
}

// SaveRecord handles POST /api/detection/history.
func (c *DetectionController) SaveRecord() {
	userID, ok := c.requireUserID()
	if !ok {
		return
	}

	var sub services.RecordSubmission
	if err := json.Unmarshal(c.Ctx.Input.RequestBody, &sub); err != nil {
		c.JSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := getDetectionService().SaveRecord(c.Ctx.Request.Context(), userID, &sub)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    record,
	})
}

// History handles GET /api/detection/history.
func (c *DetectionController) History() {
	userID, ok := c.requireUserID()
	if !ok {
		return
	}

	records, err := getDetectionService().History(c.Ctx.Request.Context(), userID)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(records)
}
