package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_UnmarshalLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2021-03-04T05:06:07Z"`: time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		`"2021-03-04 05:06:07"`:  time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		`"2021-03-04"`:           time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
		`"Mar 4, 2021"`:          time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	for in, want := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if !ts.Time.Equal(want) {
			t.Errorf("unmarshal %s: expected %v, got %v", in, want, ts.Time)
		}
	}
}

func TestTimestamp_UnmarshalInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected error for unparseable timestamp")
	}
	if err := json.Unmarshal([]byte(`42`), &ts); err == nil {
		t.Fatalf("expected error for non-string timestamp")
	}
}

func TestTimestamp_Marshal(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null for zero timestamp, got %s", b)
	}

	loc := time.FixedZone("UTC+3", 3*60*60)
	b, err = json.Marshal(Timestamp{Time: time.Date(2024, 1, 2, 15, 0, 0, 0, loc)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-01-02T12:00:00Z"` {
		t.Errorf("unexpected encoding %s", b)
	}
}
