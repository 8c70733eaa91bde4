package services

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/fraudshield/backend-go/internal/config"
	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/metrics"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/realitydefender"
	"github.com/fraudshield/backend-go/internal/repository"
	"github.com/fraudshield/backend-go/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Analyzer is the vendor verdict surface, satisfied by
// *realitydefender.Client.
type Analyzer interface {
	Analyze(ctx context.Context, fileName string, media []byte) (*realitydefender.Result, error)
}

// AnalysisResult is the analyze response. Confidence is 0-100.
type AnalysisResult struct {
	IsDeepfake bool   `json:"isDeepfake"`
	Confidence int    `json:"confidence"`
	Analysis   string `json:"analysis"`
	Type       string `json:"type"`
}

// RecordSubmission is a client-saved history entry for a finished
// analysis.
type RecordSubmission struct {
	MediaType       string `json:"mediaType" validate:"required,max=50"`
	FileName        string `json:"fileName" validate:"required,max=255"`
	IsDeepfake      bool   `json:"isDeepfake"`
	ConfidenceScore int    `json:"confidenceScore" validate:"min=0,max=100"`
}

// DetectionService runs deepfake analysis on uploaded media. Without a
// vendor API key it falls back to simulated verdicts so the feature
// stays demoable. Analysis itself is stateless; history entries are
// saved separately per authenticated user.
type DetectionService struct {
	repo     repository.DetectionRepository
	analyzer Analyzer
	config   *config.Config
	validate *validator.Validate
	logger   *zap.Logger
	rand     *rand.Rand
}

func NewDetectionService(repo repository.DetectionRepository) *DetectionService {
	cfg := config.GetAppConfig()
	var analyzer Analyzer
	if cfg.Detection.APIKey != "" {
		analyzer = realitydefender.NewClient(cfg.Detection.APIKey, cfg.Detection.BaseURL)
	}
	return &DetectionService{
		repo:     repo,
		analyzer: analyzer,
		config:   cfg,
		validate: validator.New(),
		logger:   logger.GetLogger(),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Analyze validates, archives and analyzes one upload and returns the
// verdict. Nothing is persisted here.
func (s *DetectionService) Analyze(ctx context.Context, mediaType, fileName, contentType string, media []byte) (*AnalysisResult, error) {
	if len(media) == 0 {
		return nil, apperrors.NewValidationError("uploaded file is empty")
	}
	if int64(len(media)) > s.config.FileUpload.MaxSize {
		return nil, &apperrors.AppError{
			Code:     apperrors.ErrCodeFileTooLarge,
			Message:  "uploaded file exceeds the size limit",
			Type:     apperrors.ErrorTypeValidation,
			HTTPCode: 413,
		}
	}
	if !s.extensionAllowed(fileName) {
		return nil, apperrors.NewInvalidInputError("file", "unsupported media format")
	}

	// Archive the upload; detection still proceeds when object storage
	// is not configured.
	if store := storage.GetObjectStore(); store != nil {
		key := "detections/" + uuid.NewString() + "_" + filepath.Base(fileName)
		if _, err := store.Put(ctx, key, bytes.NewReader(media), int64(len(media)), contentType); err != nil {
			s.logger.Warn("Failed to archive detection upload",
				zap.String("file_name", fileName),
				zap.Error(err))
		}
	}

	isDeepfake, confidence, mode, err := s.verdict(ctx, fileName, media)
	if err != nil {
		return nil, err
	}
	metrics.DetectionsAnalyzed.WithLabelValues(mode).Inc()

	s.logger.Info("Completed deepfake analysis",
		zap.String("file_name", filepath.Base(fileName)),
		zap.Bool("is_deepfake", isDeepfake),
		zap.Int("confidence", confidence),
		zap.String("mode", mode))

	return &AnalysisResult{
		IsDeepfake: isDeepfake,
		Confidence: confidence,
		Analysis:   analysisText(isDeepfake, mode),
		Type:       mediaType,
	}, nil
}

// SaveRecord stores one history entry for the given user.
func (s *DetectionService) SaveRecord(ctx context.Context, userID uint, sub *RecordSubmission) (*models.DetectionRecord, error) {
	if err := s.validate.Struct(sub); err != nil {
		return nil, apperrors.NewValidationError("invalid detection record").WithCause(err)
	}

	record := &models.DetectionRecord{
		UserID:          userID,
		MediaType:       sub.MediaType,
		FileName:        filepath.Base(sub.FileName),
		IsDeepfake:      sub.IsDeepfake,
		ConfidenceScore: sub.ConfidenceScore,
		CreatedAt:       time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// History returns the user's past analyses, newest first.
func (s *DetectionService) History(ctx context.Context, userID uint) ([]models.DetectionRecord, error) {
	return s.repo.ByUser(ctx, userID)
}

func (s *DetectionService) verdict(ctx context.Context, fileName string, media []byte) (bool, int, string, error) {
	if s.analyzer == nil {
		// Simulated verdict: leaning authentic, confidence 55-95.
		isDeepfake := s.rand.Intn(100) < 30
		confidence := 55 + s.rand.Intn(41)
		return isDeepfake, confidence, "simulation", nil
	}

	result, err := s.analyzer.Analyze(ctx, fileName, media)
	if err != nil {
		return false, 0, "", apperrors.NewUpstreamError("detection vendor", err)
	}

	confidence := int(result.Score * 100)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return result.Manipulated(), confidence, "vendor", nil
}

func analysisText(isDeepfake bool, mode string) string {
	var text string
	if isDeepfake {
		text = "The media shows signs consistent with AI generation or manipulation."
	} else {
		text = "No strong manipulation signals were found in this media."
	}
	if mode == "simulation" {
		text += " Note: no detection vendor is configured, this verdict is simulated."
	}
	return text
}

func (s *DetectionService) extensionAllowed(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range s.config.FileUpload.AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}
