package services

import (
	"context"
	"math/rand"
	"time"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	questionsPerRound = 5
	leaderboardSize   = 10
)

// ScoreSubmission is a finished quiz run.
type ScoreSubmission struct {
	PlayerName         string `json:"playerName" validate:"required,min=1,max=100"`
	Role               string `json:"role" validate:"required,max=50"`
	Score              int    `json:"score" validate:"min=0"`
	ScenariosCompleted int    `json:"scenariosCompleted" validate:"min=0"`
}

// GameService runs the spot-the-scam quiz.
type GameService struct {
	repo     repository.GameRepository
	validate *validator.Validate
	logger   *zap.Logger
	rand     *rand.Rand
}

func NewGameService(repo repository.GameRepository) *GameService {
	return &GameService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger.GetLogger(),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Round returns a shuffled hand of questions for one theme.
func (s *GameService) Round(ctx context.Context, theme string) ([]models.GameQuestion, error) {
	if theme == "" {
		return nil, apperrors.NewValidationError("theme is required")
	}

	questions, err := s.repo.QuestionsByTheme(ctx, theme)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperrors.NewNotFoundError("questions for theme " + theme)
	}

	s.rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > questionsPerRound {
		questions = questions[:questionsPerRound]
	}
	return questions, nil
}

// SubmitScore validates and records one run.
func (s *GameService) SubmitScore(ctx context.Context, userID *uint, sub *ScoreSubmission) (*models.GameScore, error) {
	if err := s.validate.Struct(sub); err != nil {
		return nil, apperrors.NewValidationError("invalid score submission").WithCause(err)
	}

	score := &models.GameScore{
		UserID:             userID,
		PlayerName:         sub.PlayerName,
		Role:               sub.Role,
		Score:              sub.Score,
		ScenariosCompleted: sub.ScenariosCompleted,
		CreatedAt:          time.Now(),
	}
	if err := s.repo.CreateScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.Info("Recorded game score",
		zap.String("player", score.PlayerName),
		zap.Int("score", score.Score))
	return score, nil
}

// Leaderboard returns the top runs, best first.
func (s *GameService) Leaderboard(ctx context.Context) ([]models.GameScore, error) {
	return s.repo.Leaderboard(ctx, leaderboardSize)
}
