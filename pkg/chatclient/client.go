// Package chatclient is the Go consumer for the streaming chat relay.
// It mirrors the browser client: one in-memory transcript, optimistic
// echo of the user's turn, incremental assembly of the assistant's
// reply from stream frames, and abort support that keeps whatever text
// already arrived.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/fraudshield/backend-go/internal/sse"
)

// ErrorReplyText replaces the assistant placeholder when the exchange
// fails for any reason other than a local abort.
const ErrorReplyText = "Error: Could not get response."

// State is the lifecycle of one exchange.
type State int

const (
	// StateIdle means no exchange is running.
	StateIdle State = iota
	// StateSending means the request is sent but no frame has arrived.
	StateSending
	// StateStreaming means at least one content frame has arrived.
	StateStreaming
	// StateCompleted means the last exchange finished with a done frame.
	StateCompleted
	// StateErrored means the last exchange failed.
	StateErrored
	// StateAborted means the last exchange was cancelled locally.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateErrored:
		return "errored"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Entry is one transcript line.
type Entry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrBusy is returned when Send is called while an exchange is already
// in flight.
var ErrBusy = errors.New("chatclient: an exchange is already in progress")

// Client consumes the relay endpoint for one conversation transcript.
// All methods are safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	state   State
	entries []Entry
	cancel  context.CancelFunc
}

// New builds a client against the API base URL, e.g.
// "http://localhost:8000". A nil httpClient falls back to
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		state:      StateIdle,
	}
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Streaming reports whether an exchange is in flight.
func (c *Client) Streaming() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateSending || c.state == StateStreaming
}

// Entries returns a snapshot of the transcript.
func (c *Client) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Abort cancels the in-flight exchange, if any. The partial assistant
// text already received stays in the transcript.
func (c *Client) Abort() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Send runs one exchange: echo the user's turn, POST it, and assemble
// the assistant's reply from the frame stream. It blocks until the
// stream terminates. A local abort is not an error; every other failure
// leaves ErrorReplyText in the transcript and returns the cause.
func (c *Client) Send(ctx context.Context, conversationID uint, content string) error {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.state == StateSending || c.state == StateStreaming {
		c.mu.Unlock()
		cancel()
		return ErrBusy
	}
	c.state = StateSending
	c.cancel = cancel
	// Optimistic echo plus an empty placeholder the increments land in.
	c.entries = append(c.entries,
		Entry{Role: "user", Content: content},
		Entry{Role: "assistant", Content: ""},
	)
	c.mu.Unlock()

	err := c.run(ctx, conversationID, content)

	c.mu.Lock()
	c.cancel = nil
	switch {
	case err == nil:
		c.state = StateCompleted
	case ctx.Err() != nil:
		// Local abort: keep the partial reply, report no failure.
		c.state = StateAborted
		err = nil
	default:
		c.state = StateErrored
		c.setAssistantText(ErrorReplyText)
	}
	c.mu.Unlock()
	cancel()
	return err
}

func (c *Client) run(ctx context.Context, conversationID uint, content string) error {
	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/conversations/%d/messages", c.baseURL, conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("send message returned status %d", resp.StatusCode)
	}

	decoder := sse.NewDecoder()
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			done, evErr := c.apply(decoder.Feed(buf[:n]))
			if evErr != nil {
				return evErr
			}
			if done {
				return nil
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				// Body exhaustion counts as completion, done frame or
				// not; whatever text arrived stands.
				return nil
			}
			return readErr
		}
	}
}

// apply folds decoded events into the transcript. Events after a done
// frame in the same chunk are not processed.
func (c *Client) apply(events []sse.Event) (done bool, err error) {
	for _, ev := range events {
		switch ev.Kind {
		case sse.EventContent:
			c.mu.Lock()
			c.state = StateStreaming
			c.appendAssistantText(ev.Content)
			c.mu.Unlock()
		case sse.EventDone:
			return true, nil
		case sse.EventError:
			return false, errors.New(ev.Message)
		}
	}
	return false, nil
}

// callers hold c.mu
func (c *Client) appendAssistantText(text string) {
	if len(c.entries) == 0 {
		return
	}
	c.entries[len(c.entries)-1].Content += text
}

func (c *Client) setAssistantText(text string) {
	if len(c.entries) == 0 {
		return
	}
	c.entries[len(c.entries)-1].Content = text
}
