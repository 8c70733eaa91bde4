package sse

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EventKind discriminates decoded frames.
type EventKind int

const (
	// EventContent carries a reply text increment.
	EventContent EventKind = iota
	// EventDone signals stream completion.
	EventDone
	// EventError carries a mid-stream failure notice.
	EventError
)

// Event is one decoded frame.
type Event struct {
	Kind    EventKind
	Content string
	Message string
}

// Decoder reassembles frames from arbitrarily chunked stream bytes.
// Bytes are buffered until a full line is available, so frame
// boundaries never need to align with network read boundaries and
// multi-byte UTF-8 sequences split across reads survive intact.
//
// Lines without the "data: " prefix (blank separators, comments) are
// ignored. Data lines whose payload is not valid JSON are counted and
// skipped; they never abort the stream.
type Decoder struct {
	buf       []byte
	malformed int
}

// NewDecoder returns an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the internal buffer and returns every event
// whose frame is now complete, in arrival order. Partial trailing lines
// are retained for the next call.
func (d *Decoder) Feed(chunk []byte) []Event {
	d.buf = append(d.buf, chunk...)

	var events []Event
	for {
		idx := bytes.IndexByte(d.buf, '\n')
		if idx < 0 {
			break
		}
		line := string(d.buf[:idx])
		d.buf = d.buf[idx+1:]

		if ev, ok := d.decodeLine(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Malformed reports how many data frames were skipped as unparseable.
func (d *Decoder) Malformed() int {
	return d.malformed
}

func (d *Decoder) decodeLine(line string) (Event, bool) {
	line = strings.TrimSuffix(line, "\r")
	data, found := strings.CutPrefix(line, DataPrefix)
	if !found {
		return Event{}, false
	}

	var p struct {
		Content *string `json:"content"`
		Done    *bool   `json:"done"`
		Error   *string `json:"error"`
	}
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		d.malformed++
		return Event{}, false
	}

	// tagged-union decode: done, else error, else content, else the
	// frame contributes nothing
	switch {
	case p.Done != nil && *p.Done:
		return Event{Kind: EventDone}, true
	case p.Error != nil:
		return Event{Kind: EventError, Message: *p.Error}, true
	case p.Content != nil:
		return Event{Kind: EventContent, Content: *p.Content}, true
	default:
		return Event{}, false
	}
}
