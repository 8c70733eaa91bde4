package controllers

import (
	"net/http"

	"github.com/fraudshield/backend-go/internal/database"
)

// RootController answers the service banner.
type RootController struct {
	BaseController
}

func (c *RootController) Index() {
	c.JSONSuccess(map[string]interface{}{
		"service": "fraudshield-backend",
		"status":  "running",
	})
}

// HealthController answers liveness and dependency health.
type HealthController struct {
	BaseController
}

func (c *HealthController) Health() {
	ctx := c.Ctx.Request.Context()
	components := map[string]string{
		"database": "up",
		"redis":    "up",
	}
	healthy := true

	if database.DB == nil {
		components["database"] = "down"
		healthy = false
	} else if sqlDB, err := database.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		components["database"] = "down"
		healthy = false
	}

	if database.RedisClient == nil {
		components["redis"] = "not_configured"
	} else if err := database.RedisClient.Ping(ctx).Err(); err != nil {
		components["redis"] = "down"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, map[string]interface{}{
		"healthy":    healthy,
		"components": components,
	})
}
