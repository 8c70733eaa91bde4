// Package llm wraps the OpenAI-compatible generation endpoint the chat
// relay forwards to.
package llm

import (
	"context"
	"errors"
	"io"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

// Message is one turn of conversation context sent upstream.
type Message struct {
	Role    string
	Content string
}

// Stream yields reply text increments. Recv returns io.EOF when the
// upstream signals completion.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Streamer opens a streaming completion over an ordered history.
type Streamer interface {
	StreamChat(ctx context.Context, history []Message) (Stream, error)
}

// Client is the production Streamer backed by go-openai.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewClient builds a client from AI config. A non-empty BaseURL points
// the client at any OpenAI-compatible endpoint.
func NewClient(cfg config.AIConfig) *Client {
	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(apiConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
	}
}

// Ready reports whether the client has a usable configuration.
func (c *Client) Ready() bool {
	return c != nil && c.model != ""
}

// StreamChat maps local roles onto the upstream vocabulary and opens
// the streaming call.
func (c *Client) StreamChat(ctx context.Context, history []Message) (Stream, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stream:      true,
	})
	if err != nil {
		return nil, err
	}

	return &openaiStream{inner: stream}, nil
}

type openaiStream struct {
	inner *openai.ChatCompletionStream
}

// Recv extracts the increment text from whichever known shape is
// present; a chunk with neither shape contributes an empty increment
// rather than an error.
func (s *openaiStream) Recv() (string, error) {
	resp, err := s.inner.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	choice := resp.Choices[0]
	if choice.Delta.Content != "" {
		return choice.Delta.Content, nil
	}
	return "", nil
}

func (s *openaiStream) Close() error {
	return s.inner.Close()
}
