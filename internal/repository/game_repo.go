package repository

import (
	"context"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"gorm.io/gorm"
)

type gameRepo struct {
	db *gorm.DB
}

// NewGameRepository returns the gorm-backed GameRepository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepo{db: db}
}

func (r *gameRepo) QuestionsByTheme(ctx context.Context, theme string) ([]models.GameQuestion, error) {
	var questions []models.GameQuestion
	err := r.db.WithContext(ctx).Where("theme = ?", theme).Find(&questions).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("load questions", err)
	}
	return questions, nil
}

func (r *gameRepo) CreateScore(ctx context.Context, score *models.GameScore) error {
	if err := r.db.WithContext(ctx).Create(score).Error; err != nil {
		return apperrors.NewPersistenceError("create score", err)
	}
	return nil
}

func (r *gameRepo) Leaderboard(ctx context.Context, limit int) ([]models.GameScore, error) {
	var scores []models.GameScore
	err := r.db.WithContext(ctx).Order("score DESC").Limit(limit).Find(&scores).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("load leaderboard", err)
	}
	return scores, nil
}
