package services

import (
	"context"
	"time"

	"github.com/fraudshield/backend-go/internal/auth"
	"github.com/fraudshield/backend-go/internal/config"
	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	Password  string `json:"password" validate:"required,min=6"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

// UserService handles registration and credential checks.
type UserService struct {
	repo   repository.UserRepository
	jwt    *auth.JWTService
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository) *UserService {
	cfg := config.GetAppConfig()
	return &UserService{
		repo:   repo,
		jwt:    auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.Session.TTLHours)*time.Hour),
		logger: logger.GetLogger(),
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if existing, _ := s.repo.GetByUsername(ctx, req.Username); existing != nil {
		return nil, apperrors.NewValidationError("Username already exists")
	}
	if req.Email != "" {
		if existing, _ := s.repo.GetByEmail(ctx, req.Email); existing != nil {
			return nil, apperrors.NewValidationError("Email already in use")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewSystemError(apperrors.ErrCodeInternalServer, "Registration failed").WithCause(err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hash),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Authenticate verifies credentials, returning the user on success.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid username or password")
	}
	return user, nil
}

// IssueToken signs a bearer token for API clients.
func (s *UserService) IssueToken(user *models.User) (string, error) {
	return s.jwt.GenerateToken(user.ID, user.Username, user.Email)
}

// ValidateToken resolves a bearer token back to claims.
func (s *UserService) ValidateToken(token string) (*auth.JWTClaims, error) {
	return s.jwt.ValidateToken(token)
}

// GetUser loads an account by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
