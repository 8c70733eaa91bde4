package repository

import (
	"context"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"gorm.io/gorm"
)

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepository returns the gorm-backed ReportRepository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *models.ScamReport) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return apperrors.NewPersistenceError("create scam report", err)
	}
	return nil
}

func (r *reportRepo) Recent(ctx context.Context, limit int) ([]models.ScamReport, error) {
	var reports []models.ScamReport
	err := r.db.WithContext(ctx).Order("date_reported DESC").Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("load scam reports", err)
	}
	return reports, nil
}

func (r *reportRepo) TypeStats(ctx context.Context) ([]ScamTypeStat, error) {
	var stats []ScamTypeStat
	err := r.db.WithContext(ctx).
		Model(&models.ScamReport{}).
		Select("scam_type AS type, COUNT(*) AS count").
		Group("scam_type").
		Scan(&stats).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("aggregate scam reports", err)
	}
	return stats, nil
}
