package services

import (
	"context"
	"time"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/kafka"
	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/metrics"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const recentReportLimit = 100

// ReportSubmission is a new community scam report.
type ReportSubmission struct {
	ScamType    string `json:"scamType" validate:"required,max=100"`
	Description string `json:"description" validate:"required,min=10"`
	Location    string `json:"location" validate:"max=200"`
}

// RadarStats is the radar dashboard payload.
type RadarStats struct {
	ByType []repository.ScamTypeStat `json:"byType"`
	Recent []models.ScamReport       `json:"recent"`
}

// RadarService collects scam reports and aggregates them for the
// community dashboard.
type RadarService struct {
	repo     repository.ReportRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewRadarService(repo repository.ReportRepository) *RadarService {
	return &RadarService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger.GetLogger(),
	}
}

// SubmitReport validates and stores one report, then audits it.
func (s *RadarService) SubmitReport(ctx context.Context, userID *uint, sub *ReportSubmission) (*models.ScamReport, error) {
	if err := s.validate.Struct(sub); err != nil {
		return nil, apperrors.NewValidationError("invalid scam report").WithCause(err)
	}

	report := &models.ScamReport{
		UserID:       userID,
		ScamType:     sub.ScamType,
		Description:  sub.Description,
		Location:     sub.Location,
		DateReported: time.Now(),
		Status:       "verified",
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	metrics.ReportsSubmitted.Inc()

	go func() {
		if err := kafka.SendScamReport(report.ID, report.ScamType, report.Description); err != nil {
			s.logger.Error("Failed to publish report audit event",
				zap.Uint("report_id", report.ID),
				zap.Error(err))
		}
	}()

	s.logger.Info("Accepted scam report",
		zap.Uint("report_id", report.ID),
		zap.String("scam_type", report.ScamType))
	return report, nil
}

// Stats returns per-type totals plus the most recent reports.
func (s *RadarService) Stats(ctx context.Context) (*RadarStats, error) {
	byType, err := s.repo.TypeStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.Recent(ctx, recentReportLimit)
	if err != nil {
		return nil, err
	}
	return &RadarStats{ByType: byType, Recent: recent}, nil
}
