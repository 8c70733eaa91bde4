package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web"
	"github.com/fraudshield/backend-go/internal/config"
	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/services"
)

// BaseController provides helpers for consistent JSON responses and
// request authentication.
type BaseController struct {
	web.Controller
}

// JSON writes a JSON response with the supplied HTTP status code.
func (c *BaseController) JSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	c.ServeJSON()
}

// JSONSuccess writes a standard success envelope.
func (c *BaseController) JSONSuccess(data interface{}) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// JSONError writes an error envelope with message.
func (c *BaseController) JSONError(status int, message string) {
	c.JSON(status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// JSONAppError maps an application error onto its HTTP status.
func (c *BaseController) JSONAppError(err error) {
	appErr := apperrors.GetAppError(err)
	c.JSONError(appErr.HTTPCode, appErr.Message)
}

// currentSession resolves the session cookie, nil when absent or
// expired.
func (c *BaseController) currentSession() *services.Session {
	cookie := c.Ctx.GetCookie(config.GetAppConfig().Session.CookieName)
	if cookie == "" {
		return nil
	}
	session, err := getSessionService().GetSession(c.Ctx.Request.Context(), cookie)
	if err != nil {
		return nil
	}
	return session
}

// authenticatedUserID resolves the caller from the session cookie,
// falling back to a Bearer token for API clients.
func (c *BaseController) authenticatedUserID() (uint, bool) {
	if session := c.currentSession(); session != nil {
		return session.UserID, true
	}

	authHeader := c.Ctx.Input.Header("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := getUserService().ValidateToken(parts[1]); err == nil {
				return claims.UserID, true
			}
		}
	}

	return 0, false
}

// requireUserID is authenticatedUserID plus the 401 response.
func (c *BaseController) requireUserID() (uint, bool) {
	userID, ok := c.authenticatedUserID()
	if !ok {
		c.JSONError(http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	return userID, true
}

// optionalUserID returns the caller when authenticated, nil otherwise.
func (c *BaseController) optionalUserID() *uint {
	if userID, ok := c.authenticatedUserID(); ok {
		return &userID
	}
	return nil
}

// mustParseUintParam parses a numeric path parameter, answering 400
// itself on failure.
func (c *BaseController) mustParseUintParam(name string) (uint, bool) {
	raw := c.Ctx.Input.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSONError(http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(value), true
}

// getClientIP returns the client address, honoring proxy headers.
func (c *BaseController) getClientIP() string {
	xForwardedFor := c.Ctx.Input.Header("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}
	if xRealIP := c.Ctx.Input.Header("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}
	return c.Ctx.Input.IP()
}
