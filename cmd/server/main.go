package main

import (
	"log"
	"strconv"

	"github.com/beego/beego/v2/server/web"
	"github.com/fraudshield/backend-go/app/bootstrap"
	"github.com/fraudshield/backend-go/app/router"
	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/logger"
	"go.uber.org/zap"
)

func main() {
	app, err := bootstrap.Init()
	if err != nil {
		log.Fatalf("failed to bootstrap application: %v", err)
	}
	defer app.Shutdown()

	router.Init()

	web.BConfig.AppName = "FraudShield Backend"
	web.BConfig.CopyRequestBody = true
	if port, err := strconv.Atoi(config.AppConfig.Server.Port); err == nil {
		web.BConfig.Listen.HTTPPort = port
	}

	logger.Info("Starting FraudShield backend", zap.Int("port", web.BConfig.Listen.HTTPPort))
	web.Run()
}
