package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/services"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	BaseController
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// Register handles POST /api/register: create the account, then log
// the new user straight in.
func (c *AuthController) Register() {
	var req services.RegisterRequest
	if err := json.Unmarshal(c.Ctx.Input.RequestBody, &req); err != nil {
		c.JSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := getUserService().Register(c.Ctx.Request.Context(), &req)
	if err != nil {
		c.JSONAppError(err)
		return
	}

	if err := c.establishSession(user); err != nil {
		c.JSONAppError(err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    toUserResponse(user),
	})
}

// Login handles POST /api/login.
func (c *AuthController) Login() {
	var req loginRequest
	if err := json.Unmarshal(c.Ctx.Input.RequestBody, &req); err != nil {
		c.JSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := getUserService().Authenticate(c.Ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSONAppError(err)
		return
	}

	if err := c.establishSession(user); err != nil {
		c.JSONAppError(err)
		return
	}

	token, err := getUserService().IssueToken(user)
	if err != nil {
		c.JSONAppError(err)
		return
	}

	c.JSONSuccess(map[string]interface{}{
		"user":  toUserResponse(user),
		"token": token,
	})
}

// Logout handles POST /api/logout.
func (c *AuthController) Logout() {
	cfg := config.GetAppConfig()
	cookie := c.Ctx.GetCookie(cfg.Session.CookieName)
	if cookie != "" {
		if err := getSessionService().DeleteSession(c.Ctx.Request.Context(), cookie); err != nil {
			c.JSONAppError(err)
			return
		}
	}
	c.Ctx.SetCookie(cfg.Session.CookieName, "", -1, "/")
	c.JSONSuccess(map[string]interface{}{"loggedOut": true})
}

// Me handles GET /api/user, the session probe. Answers 401 when no
// valid session or token is presented.
func (c *AuthController) Me() {
	userID, ok := c.requireUserID()
	if !ok {
		return
	}

	user, err := getUserService().GetUser(c.Ctx.Request.Context(), userID)
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(toUserResponse(user))
}

func (c *AuthController) establishSession(user *models.User) error {
	session, err := getSessionService().CreateSession(
		c.Ctx.Request.Context(),
		user.ID,
		user.Username,
		user.Email,
		c.Ctx.Input.Header("User-Agent"),
		c.getClientIP(),
	)
	if err != nil {
		return err
	}

	cfg := config.GetAppConfig()
	maxAge := int(time.Until(session.ExpiresAt) / time.Second)
	c.Ctx.SetCookie(cfg.Session.CookieName, session.SessionID, maxAge, "/", "", false, true)
	return nil
}
