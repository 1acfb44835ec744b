package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a time that accepts a handful of human layouts on input and
// always renders as RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp format (string expected): %w", err)
	}

	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return []byte(`null`), nil
	}

	return json.Marshal(ts.Time.UTC().Format(time.RFC3339))
}
