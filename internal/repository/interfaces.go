// Package repository defines the persistence interfaces the services
// depend on, with gorm-backed implementations. Services take the
// interfaces so tests can substitute fakes.
package repository

import (
	"context"

	"github.com/fraudshield/backend-go/internal/models"
)

// ChatRepository stores conversations and their message threads.
type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *models.Conversation) error
	GetConversation(ctx context.Context, id uint) (*models.Conversation, error)
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	DeleteConversation(ctx context.Context, id uint) error
	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, conversationID uint) ([]models.Message, error)
}

// UserRepository stores accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// GameRepository stores quiz questions and scores.
type GameRepository interface {
	QuestionsByTheme(ctx context.Context, theme string) ([]models.GameQuestion, error)
	CreateScore(ctx context.Context, score *models.GameScore) error
	Leaderboard(ctx context.Context, limit int) ([]models.GameScore, error)
}

// ScamTypeStat is one aggregate row of the radar dashboard.
type ScamTypeStat struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// ReportRepository stores scam reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.ScamReport) error
	Recent(ctx context.Context, limit int) ([]models.ScamReport, error)
	TypeStats(ctx context.Context) ([]ScamTypeStat, error)
}

// DetectionRepository stores deepfake analysis history.
type DetectionRepository interface {
	Create(ctx context.Context, record *models.DetectionRecord) error
	ByUser(ctx context.Context, userID uint) ([]models.DetectionRecord, error)
}

// ContentRepository serves the curated safety pages.
type ContentRepository interface {
	SafetyEffects(ctx context.Context) ([]models.SafetyEffect, error)
	MentalEffects(ctx context.Context) ([]models.MentalEffect, error)
	RealStories(ctx context.Context) ([]models.RealStory, error)
}
