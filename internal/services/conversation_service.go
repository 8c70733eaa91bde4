package services

import (
	"context"
	"time"

	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
	"go.uber.org/zap"
)

const defaultConversationTitle = "New Chat"

// ConversationService handles the conversation CRUD around the relay.
type ConversationService struct {
	repo   repository.ChatRepository
	logger *zap.Logger
}

func NewConversationService(repo repository.ChatRepository) *ConversationService {
	return &ConversationService{
		repo:   repo,
		logger: logger.GetLogger(),
	}
}

// Create starts a new conversation, defaulting the title.
func (s *ConversationService) Create(ctx context.Context, userID *uint, title string) (*models.Conversation, error) {
	if title == "" {
		title = defaultConversationTitle
	}

	conv := &models.Conversation{
		UserID:    userID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}

	s.logger.Info("Created new conversation", zap.Uint("conversation_id", conv.ID))
	return conv, nil
}

// List returns all conversations, newest first.
func (s *ConversationService) List(ctx context.Context) ([]models.Conversation, error) {
	return s.repo.ListConversations(ctx)
}

// Get returns one conversation with its ordered message thread.
func (s *ConversationService) Get(ctx context.Context, id uint) (*models.Conversation, error) {
	conv, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	conv.Messages = messages
	return conv, nil
}

// Delete removes a conversation and its messages.
func (s *ConversationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteConversation(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted conversation", zap.Uint("conversation_id", id))
	return nil
}
