package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/fraudshield/backend-go/internal/services"
)

// GameController serves the spot-the-scam quiz endpoints.
type GameController struct {
	BaseController
}

// Questions handles GET /api/game/questions?theme=...
func (c *GameController) Questions() {
	theme := c.GetString("theme")

	questions, err := getGameService().Round(c.Ctx.Request.Context(), theme)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(questions)
}

// SubmitScore handles POST /api/game/scores.
func (c *GameController) SubmitScore() {
	var sub services.ScoreSubmission
	if err := json.Unmarshal(c.Ctx.Input.RequestBody, &sub); err != nil {
		c.JSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := getGameService().SubmitScore(c.Ctx.Request.Context(), c.optionalUserID(), &sub)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    score,
	})
}

// Leaderboard handles GET /api/game/leaderboard.
func (c *GameController) Leaderboard() {
	scores, err := getGameService().Leaderboard(c.Ctx.Request.Context())
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(scores)
}
