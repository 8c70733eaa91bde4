package controllers

import (
	"sync"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/database"
	"github.com/fraudshield/backend-go/internal/llm"
	"github.com/fraudshield/backend-go/internal/repository"
	"github.com/fraudshield/backend-go/internal/services"
)

// Beego constructs controllers per request via reflection, so the
// service graph is shared package-wide and built once.
var (
	servicesOnce sync.Once

	chatService         *services.ChatService
	conversationService *services.ConversationService
	userService         *services.UserService
	sessionService      *services.SessionService
	gameService         *services.GameService
	radarService        *services.RadarService
	detectionService    *services.DetectionService
	safetyService       *services.SafetyService
)

func initServices() {
	servicesOnce.Do(func() {
		db := database.DB

		chatRepo := repository.NewChatRepository(db)
		streamer := llm.NewClient(config.GetAppConfig().AI)

		chatService = services.NewChatService(chatRepo, streamer)
		conversationService = services.NewConversationService(chatRepo)
		userService = services.NewUserService(repository.NewUserRepository(db))
		sessionService = services.NewSessionService()
		gameService = services.NewGameService(repository.NewGameRepository(db))
		radarService = services.NewRadarService(repository.NewReportRepository(db))
		detectionService = services.NewDetectionService(repository.NewDetectionRepository(db))
		safetyService = services.NewSafetyService(repository.NewContentRepository(db))
	})
}

func getChatService() *services.ChatService {
	initServices()
	return chatService
}

func getConversationService() *services.ConversationService {
	initServices()
	return conversationService
}

func getUserService() *services.UserService {
	initServices()
	return userService
}

func getSessionService() *services.SessionService {
	initServices()
	return sessionService
}

func getGameService() *services.GameService {
	initServices()
	return gameService
}

func getRadarService() *services.RadarService {
	initServices()
	return radarService
}

func getDetectionService() *services.DetectionService {
	initServices()
	return detectionService
}

func getSafetyService() *services.SafetyService {
	initServices()
	return safetyService
}
