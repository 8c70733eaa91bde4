package repository

import (
	"context"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"gorm.io/gorm"
)

type detectionRepo struct {
	db *gorm.DB
}

// NewDetectionRepository returns the gorm-backed DetectionRepository.
func NewDetectionRepository(db *gorm.DB) DetectionRepository {
	return &detectionRepo{db: db}
}

func (r *detectionRepo) Create(ctx context.Context, record *models.DetectionRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return apperrors.NewPersistenceError("create detection record", err)
	}
	return nil
}

func (r *detectionRepo) ByUser(ctx context.Context, userID uint) ([]models.DetectionRecord, error) {
	var records []models.DetectionRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("load detection history", err)
	}
	return records, nil
}
