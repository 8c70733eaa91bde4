package controllers

import (
	"encoding/json"
	"net/http"
)

// ConversationController handles conversation CRUD.
type ConversationController struct {
	BaseController
}

type createConversationRequest struct {
	Title string `json:"title"`
}

// List handles GET /api/conversations.
func (c *ConversationController) List() {
	conversations, err := getConversationService().List(c.Ctx.Request.Context())
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(conversations)
}

// Create handles POST /api/conversations.
func (c *ConversationController) Create() {
	var req createConversationRequest
	if len(c.Ctx.Input.RequestBody) > 0 {
		if err := json.Unmarshal(c.Ctx.Input.RequestBody, &req); err != nil {
			c.JSONError(http.StatusBadRequest, "invalid request body")
			return
		}
	}

	conv, err := getConversationService().Create(c.Ctx.Request.Context(), c.optionalUserID(), req.Title)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    conv,
	})
}

// Get handles GET /api/conversations/:id, returning the conversation
// with its ordered message thread.
func (c *ConversationController) Get() {
	id, ok := c.mustParseUintParam(":id")
	if !ok {
		return
	}

	conv, err := getConversationService().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(conv)
}

// Delete handles DELETE /api/conversations/:id.
func (c *ConversationController) Delete() {
	id, ok := c.mustParseUintParam(":id")
	if !ok {
		return
	}

	if err := getConversationService().Delete(c.Ctx.Request.Context(), id); err != nil {
		c.JSONAppError(err)
		return
	}
	c.Ctx.Output.SetStatus(http.StatusNoContent)
	c.Ctx.Output.Body([]byte{})
}
