package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fraudshield/backend-go/internal/config"
	apperrors "github.com/fraudshield/backend-go/internal/errors"
	"github.com/fraudshield/backend-go/internal/kafka"
	"github.com/fraudshield/backend-go/internal/llm"
	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/metrics"
	"github.com/fraudshield/backend-go/internal/models"
	"github.com/fraudshield/backend-go/internal/repository"
	"go.uber.org/zap"
)

// streamErrorMessage is the in-band error payload sent when the
// upstream fails after frames were already forwarded.
const streamErrorMessage = "Failed to send message"

// StreamSink receives framed output from the relay. Satisfied by
// *sse.Writer.
type StreamSink interface {
	WriteContent(content string) error
	WriteDone() error
	WriteError(message string) error
}

// ChatService turns one user turn into one durable exchange while
// relaying the assistant's reply incrementally to the sink.
type ChatService struct {
	repo     repository.ChatRepository
	streamer llm.Streamer
	config   *config.AIConfig
	logger   *zap.Logger

	// mu guards convLocks; convLocks serializes appends per
	// conversation so concurrent sends cannot interleave turns.
	mu        sync.Mutex
	convLocks map[uint]*sync.Mutex
}

// NewChatService creates the relay service.
func NewChatService(repo repository.ChatRepository, streamer llm.Streamer) *ChatService {
	return &ChatService{
		repo:      repo,
		streamer:  streamer,
		config:    &config.GetAppConfig().AI,
		logger:    logger.GetLogger(),
		convLocks: make(map[uint]*sync.Mutex),
	}
}

// SendMessage runs the full relay for one turn.
//
// It returns an error only while a clean non-streaming error response
// is still possible, i.e. before any frame has been written to the
// sink. Once forwarding has started, failures are reported in-band with
// one error frame and a nil return.
func (s *ChatService) SendMessage(ctx context.Context, conversationID uint, content string, sink StreamSink) error {
	if strings.TrimSpace(content) == "" {
		return apperrors.NewValidationError("message content is required")
	}

	// 1. Verify the conversation exists.
	if _, err := s.repo.GetConversation(ctx, conversationID); err != nil {
		return err
	}

	lock := s.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	// 2. Persist the user message before any remote call, so a failed
	// generation never loses the user's turn.
	userMessage := &models.Message{
		ConversationID: conversationID,
		Role:           models.RoleUser,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, userMessage); err != nil {
		return err
	}
	metrics.MessagesPersisted.WithLabelValues(models.RoleUser).Inc()
	s.auditAsync(conversationID, models.RoleUser, content)

	// 3. Assemble the full ordered context.
	history, err := s.buildContext(ctx, conversationID)
	if err != nil {
		return err
	}

	// 4. Open the upstream stream. Failure here is still pre-stream.
	stream, err := s.streamer.StreamChat(ctx, history)
	if err != nil {
		metrics.StreamFailures.WithLabelValues("pre_stream").Inc()
		return apperrors.NewUpstreamError("model", err)
	}
	defer stream.Close()

	// 5. Forward every increment as it arrives, accumulating the
	// concatenation for the durable assistant record.
	var fullResponse strings.Builder
	forwarded := false

	for {
		increment, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			metrics.StreamFailures.WithLabelValues(streamPhase(forwarded)).Inc()
			if !forwarded {
				return apperrors.NewUpstreamError("model", err)
			}
			// Frames were already sent; the partial reply is not
			// persisted as a successful assistant message.
			s.logger.Error("Upstream stream failed mid-reply",
				zap.Uint("conversation_id", conversationID),
				zap.Error(err))
			if werr := sink.WriteError(streamErrorMessage); werr != nil {
				s.logger.Error("Failed to write error frame", zap.Error(werr))
			}
			return nil
		}

		if increment == "" {
			continue
		}
		fullResponse.WriteString(increment)
		if err := sink.WriteContent(increment); err != nil {
			// Client gone; stop relaying and keep the partial reply
			// out of storage, matching the mid-stream failure policy.
			s.logger.Warn("Client write failed, aborting relay",
				zap.Uint("conversation_id", conversationID),
				zap.Error(err))
			return nil
		}
		forwarded = true
		metrics.IncrementsRelayed.Inc()
	}

	// 6. Persist the assistant message, then signal completion. A
	// failed write here is logged but the delivered frames stand.
	assistantMessage := &models.Message{
		ConversationID: conversationID,
		Role:           models.RoleAssistant,
		Content:        fullResponse.String(),
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, assistantMessage); err != nil {
		s.logger.Error("Failed to persist assistant message after streaming",
			zap.Uint("conversation_id", conversationID),
			zap.Error(err))
	} else {
		metrics.MessagesPersisted.WithLabelValues(models.RoleAssistant).Inc()
		s.auditAsync(conversationID, models.RoleAssistant, assistantMessage.Content)
	}

	if err := sink.WriteDone(); err != nil {
		s.logger.Warn("Failed to write terminal frame", zap.Error(err))
	}
	return nil
}

// buildContext loads every message of the conversation and maps it onto
// the upstream role vocabulary. The final user turn is prefixed with
// the system instruction; the upstream API only offers per-message
// framing, so the instruction is re-applied on every call.
func (s *ChatService) buildContext(ctx context.Context, conversationID uint) ([]llm.Message, error) {
	messages, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(messages))
	for i, m := range messages {
		text := m.Content
		if m.Role == models.RoleUser && i == len(messages)-1 {
			text = s.config.SystemInstruction + "\n\nUser Query: " + text
		}
		role := models.RoleUser
		if m.Role == models.RoleAssistant {
			role = models.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: text})
	}
	return history, nil
}

func (s *ChatService) conversationLock(id uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.convLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.convLocks[id] = lock
	}
	return lock
}

func (s *ChatService) auditAsync(conversationID uint, role, content string) {
	go func() {
		if err := kafka.SendChatMessage(conversationID, role, content); err != nil {
			s.logger.Error("Failed to publish chat audit event",
				zap.Uint("conversation_id", conversationID),
				zap.Error(err))
		}
	}()
}

func streamPhase(forwarded bool) string {
	if forwarded {
		return "mid_stream"
	}
	return "pre_stream"
}
