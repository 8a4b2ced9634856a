package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TimelineEvent is a single entry of a day's timeline.
type TimelineEvent struct {
	Time        string `json:"time"`
	Event       string `json:"event"`
	Description string `json:"description,omitempty"`
}

// Timeline is the ordered list of events recorded for a day.
//
// Payloads that were persisted in a shape other than a list of events are
// kept verbatim: they are re-emitted unchanged instead of being dropped, so a
// single malformed row never breaks a listing.
type Timeline struct {
	Events []TimelineEvent
	raw    json.RawMessage
}

// NewTimeline builds a Timeline from events.
func NewTimeline(events ...TimelineEvent) Timeline {
	return Timeline{Events: events}
}

// ParseTimeline decodes a persisted timeline. NULL or empty input yields an
// empty timeline. When the payload is valid JSON of an unexpected shape the
// returned Timeline keeps it verbatim and the decode error is returned
// alongside, so the caller can decide to log and continue.
func ParseTimeline(data []byte) (Timeline, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Timeline{}, nil
	}

	var events []TimelineEvent
	if err := json.Unmarshal(data, &events); err != nil {
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		if !json.Valid(raw) {
			raw, _ = json.Marshal(string(data))
		}
		return Timeline{raw: raw}, fmt.Errorf("decode timeline: %w", err)
	}

	return Timeline{Events: events}, nil
}

// IsUnparsed reports whether the timeline holds a verbatim payload that could
// not be decoded into events.
func (t Timeline) IsUnparsed() bool {
	return t.raw != nil
}

// IsEmpty reports whether there is nothing to persist.
func (t Timeline) IsEmpty() bool {
	return t.raw == nil && len(t.Events) == 0
}

// Value returns the JSON payload to persist, or nil for an empty timeline.
func (t Timeline) Value() ([]byte, error) {
	if t.IsEmpty() {
		return nil, nil
	}
	return t.MarshalJSON()
}

// MarshalJSON implements [json.Marshaler]. An empty timeline is encoded as [].
func (t Timeline) MarshalJSON() ([]byte, error) {
	if t.raw != nil {
		return t.raw, nil
	}
	if t.Events == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Events)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timeline) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = Timeline{}
		return nil
	}

	var events []TimelineEvent
	if err := json.Unmarshal(b, &events); err != nil {
		return fmt.Errorf("timeline must be a list of events: %w", err)
	}
	*t = Timeline{Events: events}
	return nil
}
