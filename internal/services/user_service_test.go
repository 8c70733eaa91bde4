package services

import (
	"context"
	"testing"

	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user")
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user")
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "arjun",
		Password: "s3cret-pass",
		Email:    "arjun@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	authed, err := svc.Authenticate(context.Background(), "arjun", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "arjun",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "arjun", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.GetAppError(err).Code)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterRequest{Username: "arjun", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &RegisterRequest{Username: "arjun", Password: "another-pass"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetAppError(err).Code)
}

func TestUserService_Register_MultipleUsersWithoutEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterRequest{Username: "arjun", Password: "s3cret-pass"})
	require.NoError(t, err)

	// a second email-less account must not collide with the first
	_, err = svc.Register(context.Background(), &RegisterRequest{Username: "meera", Password: "another-pass"})
	require.NoError(t, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "arjun", Password: "s3cret-pass", Email: "arjun@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &RegisterRequest{
		Username: "meera", Password: "another-pass", Email: "arjun@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetAppError(err).Code)
}

func TestUserService_TokenRoundTrip(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), &RegisterRequest{Username: "meera", Password: "s3cret-pass"})
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "meera", claims.Username)
}
