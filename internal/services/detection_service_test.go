package services

import (
	"context"
	"testing"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/realitydefender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetectionRepo struct {
	records []models.DetectionRecord
}

func (r *fakeDetectionRepo) Create(_ context.Context, record *models.DetectionRecord) error {
	record.ID = uint(len(r.records) + 1)
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeDetectionRepo) ByUser(_ context.Context, userID uint) ([]models.DetectionRecord, error) {
	var out []models.DetectionRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeAnalyzer struct {
	result *realitydefender.Result
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string, _ []byte) (*realitydefender.Result, error) {
	return f.result, f.err
}

func TestDetectionService_Analyze_SimulationMode(t *testing.T) {
	repo := &fakeDetectionRepo{}
	svc := NewDetectionService(repo)
	svc.analyzer = nil // no vendor key configured

	result, err := svc.Analyze(context.Background(), "image", "selfie.jpg", "image/jpeg", []byte("fake-jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "image", result.Type)
	assert.GreaterOrEqual(t, result.Confidence, 55)
	assert.LessOrEqual(t, result.Confidence, 95)
	assert.Contains(t, result.Analysis, "simulated")

	// analysis is stateless; nothing reaches the history store
	assert.Empty(t, repo.records)
}

func TestDetectionService_Analyze_VendorVerdict(t *testing.T) {
	svc := NewDetectionService(&fakeDetectionRepo{})
	svc.analyzer = &fakeAnalyzer{result: &realitydefender.Result{
		Status: "MANIPULATED",
		Score:  0.92,
	}}

	result, err := svc.Analyze(context.Background(), "video", "clip.mp4", "video/mp4", []byte("fake-mp4-bytes"))
	require.NoError(t, err)
	assert.True(t, result.IsDeepfake)
	assert.Equal(t, 92, result.Confidence)
	assert.Equal(t, "video", result.Type)
	assert.NotEmpty(t, result.Analysis)
	assert.NotContains(t, result.Analysis, "simulated")
}

func TestDetectionService_Analyze_VendorFailure(t *testing.T) {
	svc := NewDetectionService(&fakeDetectionRepo{})
	svc.analyzer = &fakeAnalyzer{err: assert.AnError}

	_, err := svc.Analyze(context.Background(), "image", "pic.png", "image/png", []byte("bytes"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUpstreamError, apperrors.GetAppError(err).Code)
}

func TestDetectionService_Analyze_RejectsUnsupportedFormat(t *testing.T) {
	svc := NewDetectionService(&fakeDetectionRepo{})
	svc.analyzer = nil

	_, err := svc.Analyze(context.Background(), "document", "malware.exe", "application/octet-stream", []byte("bytes"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetAppError(err).Code)
}

func TestDetectionService_Analyze_RejectsEmptyUpload(t *testing.T) {
	svc := NewDetectionService(&fakeDetectionRepo{})

	_, err := svc.Analyze(context.Background(), "image", "empty.jpg", "image/jpeg", nil)
	require.Error(t, err)
}

func TestDetectionService_SaveRecord(t *testing.T) {
	repo := &fakeDetectionRepo{}
	svc := NewDetectionService(repo)

	record, err := svc.SaveRecord(context.Background(), 3, &RecordSubmission{
		MediaType:       "image",
		FileName:        "selfie.jpg",
		IsDeepfake:      true,
		ConfidenceScore: 88,
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, uint(3), record.UserID)
	assert.Equal(t, "selfie.jpg", record.FileName)
	require.Len(t, repo.records, 1)
}

func TestDetectionService_SaveRecord_Invalid(t *testing.T) {
	svc := NewDetectionService(&fakeDetectionRepo{})

	_, err := svc.SaveRecord(context.Background(), 1, &RecordSubmission{
		MediaType:       "image",
		FileName:        "",
		ConfidenceScore: 50,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetAppError(err).Code)

	_, err = svc.SaveRecord(context.Background(), 1, &RecordSubmission{
		MediaType:       "image",
		FileName:        "a.jpg",
		ConfidenceScore: 250,
	})
	require.Error(t, err)
}

func TestDetectionService_History_FiltersByUser(t *testing.T) {
	repo := &fakeDetectionRepo{}
	svc := NewDetectionService(repo)

	_, err := svc.SaveRecord(context.Background(), 1, &RecordSubmission{
		MediaType: "image", FileName: "a.jpg", ConfidenceScore: 70,
	})
	require.NoError(t, err)
	_, err = svc.SaveRecord(context.Background(), 2, &RecordSubmission{
		MediaType: "image", FileName: "b.jpg", ConfidenceScore: 70,
	})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "a.jpg", history[0].FileName)
}
