package message

import (
	"encoding/json"
	"strings"

	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

// Source identifies who produced a message.
type Source string

const (
	SourceBot        Source = "bot"
	SourceUser       Source = "user"
	SourceAgent      Source = "agent"
	SourceEngagement Source = "engagement"
)

// StreamedText holds message text that may arrive either as a single string
// or as an array of streamed chunks. Both JSON shapes decode into the same
// slice representation.
type StreamedText []string

// UnmarshalJSON accepts a bare string or an array of strings.
func (t *StreamedText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = StreamedText{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = StreamedText(many)
	return nil
}

// MarshalJSON emits a bare string for single-chunk text to round-trip the
// common case, and an array otherwise.
func (t StreamedText) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// Collated joins streamed chunks into the text a collating renderer shows.
func (t StreamedText) Collated() string {
	return strings.Join(t, "\n")
}

// Empty reports whether no chunk carries visible text.
func (t StreamedText) Empty() bool {
	for _, chunk := range t {
		if strings.TrimSpace(chunk) != "" {
			return false
		}
	}
	return true
}

// Message is the immutable envelope handed to the matcher. Data is an
// open-ended bag holding channel-specific payloads; accessors on Message
// read it defensively and treat wrong shapes as absent values.
type Message struct {
	ID        string         `json:"id,omitempty"`
	Source    Source         `json:"source"`
	Timestamp string         `json:"timestamp,omitempty"`
	Text      StreamedText   `json:"text,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// FromJSON decodes a message envelope.
func FromJSON(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, chatmatcherrors.NewParseError("message", 0, err)
	}
	return &msg, nil
}

// HasText reports whether the envelope carries any visible text.
func (m *Message) HasText() bool {
	if m == nil {
		return false
	}
	return !m.Text.Empty()
}
