package repository

import (
	"context"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"gorm.io/gorm"
)

type contentRepo struct {
	db *gorm.DB
}

// NewContentRepository returns the gorm-backed ContentRepository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) SafetyEffects(ctx context.Context) ([]models.SafetyEffect, error) {
	var effects []models.SafetyEffect
	if err := r.db.WithContext(ctx).Find(&effects).Error; err != nil {
		return nil, apperrors.NewPersistenceError("load safety effects", err)
	}
	return effects, nil
}

func (r *contentRepo) MentalEffects(ctx context.Context) ([]models.MentalEffect, error) {
	var effects []models.MentalEffect
	if err := r.db.WithContext(ctx).Find(&effects).Error; err != nil {
		return nil, apperrors.NewPersistenceError("load mental effects", err)
	}
	return effects, nil
}

func (r *contentRepo) RealStories(ctx context.Context) ([]models.RealStory, error) {
	var stories []models.RealStory
	if err := r.db.WithContext(ctx).Find(&stories).Error; err != nil {
		return nil, apperrors.NewPersistenceError("load stories", err)
	}
	return stories, nil
}
