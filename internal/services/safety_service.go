package services

import (
	"context"

	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
)

// SafetyService serves the curated awareness content pages.
type SafetyService struct {
	repo repository.ContentRepository
}

func NewSafetyService(repo repository.ContentRepository) *SafetyService {
	return &SafetyService{repo: repo}
}

func (s *SafetyService) SafetyEffects(ctx context.Context) ([]models.SafetyEffect, error) {
	return s.repo.SafetyEffects(ctx)
}

func (s *SafetyService) MentalEffects(ctx context.Context) ([]models.MentalEffect, error) {
	return s.repo.MentalEffects(ctx)
}

func (s *SafetyService) RealStories(ctx context.Context) ([]models.RealStory, error) {
	return s.repo.RealStories(ctx)
}
