package router

import (
	"github.com/beego/beego/v2/server/web"
	"github.com/fraudshield/backend-go/app/controllers"
	"github.com/fraudshield/backend-go/app/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init registers all routes. Must be called after config is loaded.
func Init() {
	web.Router("/", &controllers.RootController{}, "get:Index")
	web.Router("/health", &controllers.HealthController{}, "get:Health")
	web.Handler("/metrics", promhttp.Handler())

	web.InsertFilter("/*", web.BeforeRouter, middleware.CORSMiddleware)

	authController := &controllers.AuthController{}
	web.Router("/api/register", authController, "post:Register")
	web.Router("/api/login", authController, "post:Login")
	web.Router("/api/logout", authController, "post:Logout")
	web.Router("/api/user", authController, "get:Me")

	conversationController := &controllers.ConversationController{}
	web.Router("/api/conversations", conversationController, "get:List;post:Create")
	web.Router("/api/conversations/:id", conversationController, "get:Get;delete:Delete")

	chatController := &controllers.ChatController{}
	web.Router("/api/conversations/:id/messages", chatController, "post:SendMessage")

	gameController := &controllers.GameController{}
	web.Router("/api/game/questions", gameController, "get:Questions")
	web.Router("/api/game/scores", gameController, "post:SubmitScore")
	web.Router("/api/game/leaderboard", gameController, "get:Leaderboard")

	radarController := &controllers.RadarController{}
	web.Router("/api/radar/reports", radarController, "post:Report")
	web.Router("/api/radar/stats", radarController, "get:Stats")

	detectionController := &controllers.DetectionController{}
	web.Router("/api/detection/analyze", detectionController, "post:Analyze")
	web.Router("/api/detection/history", detectionController, "get:History;post:SaveRecord")

	safetyController := &controllers.SafetyController{}
	web.Router("/api/safety/effects", safetyController, "get:Effects")
	web.Router("/api/mental-effects", safetyController, "get:MentalEffects")
	web.Router("/api/safety/stories", safetyController, "get:Stories")
}
