package services

import (
	"context"
	"fmt"
	"testing"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGameRepo struct {
	questions map[string][]models.GameQuestion
	scores    []models.GameScore
}

func (r *fakeGameRepo) QuestionsByTheme(_ context.Context, theme string) ([]models.GameQuestion, error) {
	return r.questions[theme], nil
}

func (r *fakeGameRepo) CreateScore(_ context.Context, score *models.GameScore) error {
	score.ID = uint(len(r.scores) + 1)
	r.scores = append(r.scores, *score)
	return nil
}

func (r *fakeGameRepo) Leaderboard(_ context.Context, limit int) ([]models.GameScore, error) {
	if len(r.scores) > limit {
		return r.scores[:limit], nil
	}
	return r.scores, nil
}

func questionsNamed(theme string, n int) []models.GameQuestion {
	out := make([]models.GameQuestion, n)
	for i := range out {
		out[i] = models.GameQuestion{
			ID:      uint(i + 1),
			Theme:   theme,
			Type:    "message",
			Content: fmt.Sprintf("scenario %d", i+1),
			IsScam:  i%2 == 0,
		}
	}
	return out
}

func TestGameService_Round_TrimsToHandSize(t *testing.T) {
	repo := &fakeGameRepo{questions: map[string][]models.GameQuestion{
		"elderly": questionsNamed("elderly", 12),
	}}
	svc := NewGameService(repo)

	round, err := svc.Round(context.Background(), "elderly")
	require.NoError(t, err)
	assert.Len(t, round, questionsPerRound)

	seen := map[uint]bool{}
	for _, q := range round {
		assert.False(t, seen[q.ID], "no duplicate questions in a round")
		seen[q.ID] = true
	}
}

func TestGameService_Round_SmallPoolReturnedWhole(t *testing.T) {
	repo := &fakeGameRepo{questions: map[string][]models.GameQuestion{
		"student": questionsNamed("student", 3),
	}}
	svc := NewGameService(repo)

	round, err := svc.Round(context.Background(), "student")
	require.NoError(t, err)
	assert.Len(t, round, 3)
}

func TestGameService_Round_UnknownTheme(t *testing.T) {
	svc := NewGameService(&fakeGameRepo{questions: map[string][]models.GameQuestion{}})

	_, err := svc.Round(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeResourceNotFound, apperrors.GetAppError(err).Code)
}

func TestGameService_Round_MissingTheme(t *testing.T) {
	svc := NewGameService(&fakeGameRepo{})

	_, err := svc.Round(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetAppError(err).Code)
}

func TestGameService_SubmitScore(t *testing.T) {
	repo := &fakeGameRepo{}
	svc := NewGameService(repo)

	score, err := svc.SubmitScore(context.Background(), nil, &ScoreSubmission{
		PlayerName:         "Priya",
		Role:               "student",
		Score:              400,
		ScenariosCompleted: 5,
	})
	require.NoError(t, err)
	assert.NotZero(t, score.ID)
	assert.Equal(t, "Priya", score.PlayerName)
	require.Len(t, repo.scores, 1)
}

func TestGameService_SubmitScore_Invalid(t *testing.T) {
	svc := NewGameService(&fakeGameRepo{})

	_, err := svc.SubmitScore(context.Background(), nil, &ScoreSubmission{
		PlayerName: "",
		Role:       "student",
		Score:      10,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetAppError(err).Code)
}
