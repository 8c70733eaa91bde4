package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/fraudshield/backend-go/internal/services"
)

// RadarController serves the community scam radar.
type RadarController struct {
	BaseController
}

// Report handles POST /api/radar/reports.
func (c *RadarController) Report() {
	var sub services.ReportSubmission
	if err := json.Unmarshal(c.Ctx.Input.RequestBody, &sub); err != nil {
		c.JSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := getRadarService().SubmitReport(c.Ctx.Request.Context(), c.optionalUserID(), &sub)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    report,
	})
}

// Stats handles GET /api/radar/stats.
func (c *RadarController) Stats() {
	stats, err := getRadarService().Stats(c.Ctx.Request.Context())
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(stats)
}
