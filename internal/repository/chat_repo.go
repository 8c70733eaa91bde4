package repository

import (
	"context"
	"errors"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"gorm.io/gorm"
)

type chatRepo struct {
	db *gorm.DB
}

// NewChatRepository returns the gorm-backed ChatRepository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		return apperrors.NewPersistenceError("create conversation", err)
	}
	return nil
}

func (r *chatRepo) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).First(&conv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("conversation")
		}
		return nil, apperrors.NewPersistenceError("load conversation", err)
	}
	return &conv, nil
}

func (r *chatRepo) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&convs).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list conversations", err)
	}
	return convs, nil
}

// DeleteConversation removes the conversation and, via the cascade
// foreign key, its messages.
func (r *chatRepo) DeleteConversation(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Conversation{}, id).Error
	if err != nil {
		return apperrors.NewPersistenceError("delete conversation", err)
	}
	return nil
}

func (r *chatRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return apperrors.NewPersistenceError("create message", err)
	}
	return nil
}

func (r *chatRepo) ListMessages(ctx context.Context, conversationID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list messages", err)
	}
	return msgs, nil
}
