package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_SingleFrame(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {\"content\":\"hello\"}\n\n"))
	require.Len(t, events, 1)
	assert.Equal(t, EventContent, events[0].Kind)
	assert.Equal(t, "hello", events[0].Content)
}

func TestDecoder_FrameSplitAcrossChunks(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {\"cont"))
	assert.Empty(t, events)

	events = d.Feed([]byte("ent\":\"wor"))
	assert.Empty(t, events)

	events = d.Feed([]byte("ld\"}\n\ndata: {\"done\":true}\n\n"))
	require.Len(t, events, 2)
	assert.Equal(t, "world", events[0].Content)
	assert.Equal(t, EventDone, events[1].Kind)
}

func TestDecoder_ByteAtATime(t *testing.T) {
	d := NewDecoder()
	raw := "data: {\"content\":\"ab\"}\n\ndata: {\"content\":\"cd\"}\n\ndata: {\"done\":true}\n\n"

	var events []Event
	for i := 0; i < len(raw); i++ {
		events = append(events, d.Feed([]byte{raw[i]})...)
	}

	require.Len(t, events, 3)
	assert.Equal(t, "ab", events[0].Content)
	assert.Equal(t, "cd", events[1].Content)
	assert.Equal(t, EventDone, events[2].Kind)
}

func TestDecoder_MultiByteRuneSplitAcrossChunks(t *testing.T) {
	d := NewDecoder()

	// "данные" in the payload, chunk boundary inside a two-byte rune
	raw := []byte("data: {\"content\":\"данные\"}\n\n")
	mid := len(raw) / 2

	events := d.Feed(raw[:mid])
	events = append(events, d.Feed(raw[mid:])...)

	require.Len(t, events, 1)
	assert.Equal(t, "данные", events[0].Content)
}

func TestDecoder_CRLF(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {\"content\":\"x\"}\r\n\r\n"))
	require.Len(t, events, 1)
	assert.Equal(t, "x", events[0].Content)
}

func TestDecoder_IgnoresNonDataLines(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte(": comment\nevent: message\n\ndata: {\"content\":\"y\"}\n\n"))
	require.Len(t, events, 1)
	assert.Equal(t, "y", events[0].Content)
	assert.Zero(t, d.Malformed())
}

func TestDecoder_MalformedJSONSkipped(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {not json}\n\ndata: {\"content\":\"ok\"}\n\n"))
	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].Content)
	assert.Equal(t, 1, d.Malformed())
}

func TestDecoder_ErrorFrame(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {\"error\":\"Failed to send message\"}\n\n"))
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Kind)
	assert.Equal(t, "Failed to send message", events[0].Message)
}

func TestDecoder_DoneWinsOverContent(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {\"content\":\"tail\",\"done\":true}\n\n"))
	require.Len(t, events, 1)
	assert.Equal(t, EventDone, events[0].Kind)
}

func TestDecoder_EmptyObjectContributesNothing(t *testing.T) {
	d := NewDecoder()

	events := d.Feed([]byte("data: {}\n\n"))
	assert.Empty(t, events)
	assert.Zero(t, d.Malformed())
}
