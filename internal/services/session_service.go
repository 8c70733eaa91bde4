package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/database"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// Session is the server-side record behind a browser cookie.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"login_time"`
	ExpiresAt time.Time `json:"expires_at"`
	UserAgent string    `json:"user_agent,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
}

// SessionService stores sessions in Redis. The TTL is fixed at
// creation; reads do not extend it.
type SessionService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionService() *SessionService {
	ttlHours := config.GetAppConfig().Session.TTLHours
	if ttlHours <= 0 {
		ttlHours = 168
	}
	return &SessionService{
		redis: database.RedisClient,
		ttl:   time.Duration(ttlHours) * time.Hour,
	}
}

// CreateSession stores a new session and returns it.
func (s *SessionService) CreateSession(ctx context.Context, userID uint, username, email, userAgent, clientIP string) (*Session, error) {
	if s.redis == nil {
		return nil, fmt.Errorf("redis not initialized")
	}

	now := time.Now()
	session := &Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Email:     email,
		LoginTime: now,
		ExpiresAt: now.Add(s.ttl),
		UserAgent: userAgent,
		ClientIP:  clientIP,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	key := buildSessionKey(session.SessionID)
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return session, nil
}

// GetSession loads a session by id, nil when absent or expired.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	if s.redis == nil || sessionID == "" {
		return nil, nil
	}

	data, err := s.redis.Get(ctx, buildSessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if s.redis == nil || sessionID == "" {
		return nil
	}
	return s.redis.Del(ctx, buildSessionKey(sessionID)).Err()
}

func buildSessionKey(sessionID string) string {
	return sessionPrefix + sessionID
}
