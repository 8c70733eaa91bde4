package services

import (
	"context"
	"testing"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	reports []models.ScamReport
}

func (r *fakeReportRepo) Create(_ context.Context, report *models.ScamReport) error {
	report.ID = uint(len(r.reports) + 1)
	r.reports = append(r.reports, *report)
	return nil
}

func (r *fakeReportRepo) Recent(_ context.Context, limit int) ([]models.ScamReport, error) {
	if len(r.reports) > limit {
		return r.reports[:limit], nil
	}
	return r.reports, nil
}

func (r *fakeReportRepo) TypeStats(_ context.Context) ([]repository.ScamTypeStat, error) {
	counts := map[string]int64{}
	for _, report := range r.reports {
		counts[report.ScamType]++
	}
	var out []repository.ScamTypeStat
	for scamType, count := range counts {
		out = append(out, repository.ScamTypeStat{Type: scamType, Count: count})
	}
	return out, nil
}

func TestRadarService_SubmitReport(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewRadarService(repo)

	report, err := svc.SubmitReport(context.Background(), nil, &ReportSubmission{
		ScamType:    "UPI fraud",
		Description: "Caller posed as bank staff and asked for an OTP.",
		Location:    "Pune",
	})
	require.NoError(t, err)
	assert.NotZero(t, report.ID)
	assert.Equal(t, "verified", report.Status)
	assert.False(t, report.DateReported.IsZero())
}

func TestRadarService_SubmitReport_TooShort(t *testing.T) {
	svc := NewRadarService(&fakeReportRepo{})

	_, err := svc.SubmitReport(context.Background(), nil, &ReportSubmission{
		ScamType:    "UPI fraud",
		Description: "short",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetAppError(err).Code)
}

func TestRadarService_Stats(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewRadarService(repo)

	for _, scamType := range []string{"UPI fraud", "UPI fraud", "job scam"} {
		_, err := svc.SubmitReport(context.Background(), nil, &ReportSubmission{
			ScamType:    scamType,
			Description: "A detailed description of what happened here.",
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.ByType, 2)
	assert.Len(t, stats.Recent, 3)
}
