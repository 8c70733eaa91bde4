package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/fraudshield/backend-go/internal/sse"
)

// ChatController serves the streaming relay endpoint.
type ChatController struct {
	BaseController
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// SendMessage handles POST /api/conversations/:id/messages.
//
// The response is an event stream of content increments followed by a
// terminal done frame. Failures that happen before the first frame is
// written are still answered as plain JSON errors; once streaming has
// started the service reports failures in-band.
func (c *ChatController) SendMessage() {
	conversationID, ok := c.mustParseUintParam(":id")
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := json.Unmarshal(c.Ctx.Input.RequestBody, &req); err != nil {
		c.JSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	w := c.Ctx.ResponseWriter
	sse.SetupHeaders(w.Header())

	sink := sse.NewWriter(w)
	err := getChatService().SendMessage(c.Ctx.Request.Context(), conversationID, req.Content, sink)
	if err != nil {
		// No frame was written yet, so the event-stream headers have
		// not been sent and a JSON error response is still possible.
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.JSONAppError(err)
		return
	}
}
