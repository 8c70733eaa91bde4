// Package sse implements the newline-delimited text/event-stream
// framing used by the chat relay: every frame is a single line of the
// form "data: <json object>" followed by a blank line. The payload is
// either a content increment, a terminal done signal, or an error
// notice.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// DataPrefix marks a data frame line.
	DataPrefix = "data: "

	contentType = "text/event-stream"
)

type payload struct {
	Content string `json:"content,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Writer frames payloads onto an HTTP response body, flushing after
// every frame so increments reach the client as they are produced.
type Writer struct {
	w       io.Writer
	flusher http.Flusher
}

// NewWriter wraps w. If w implements http.Flusher every frame is
// flushed immediately after being written.
func NewWriter(w io.Writer) *Writer {
	sw := &Writer{w: w}
	if f, ok := w.(http.Flusher); ok {
		sw.flusher = f
	}
	return sw
}

// SetupHeaders sets the standard event-stream response headers. Must be
// called before the first frame.
func SetupHeaders(h http.Header) {
	h.Set("Content-Type", contentType)
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
}

// WriteContent emits one content-increment frame.
func (sw *Writer) WriteContent(content string) error {
	return sw.writeFrame(payload{Content: content})
}

// WriteDone emits the terminal completion frame. Exactly one is sent
// per successful stream.
func (sw *Writer) WriteDone() error {
	return sw.writeFrame(payload{Done: true})
}

// WriteError emits an error frame. Used only for mid-stream failures,
// after content frames have already been sent.
func (sw *Writer) WriteError(message string) error {
	return sw.writeFrame(payload{Error: message})
}

func (sw *Writer) writeFrame(p payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	if _, err := fmt.Fprintf(sw.w, "%s%s\n\n", DataPrefix, data); err != nil {
		return err
	}
	if sw.flusher != nil {
		sw.flusher.Flush()
	}
	return nil
}
