package plan

import (
	"errors"
	"testing"
	"time"
)

// TestNowTimestampFormat verifies the current-time accessor produces the
// canonical second-precision UTC form with a literal Z suffix.
func TestNowTimestampFormat(t *testing.T) {
	s := NowTimestamp()
	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		t.Fatalf("NowTimestamp() = %q does not parse: %v", s, err)
	}
	if d := time.Since(ts); d < 0 || d > time.Minute {
		t.Errorf("NowTimestamp() = %q, not close to now", s)
	}
}

// TestTimestampAt verifies the explicit constructor renders calendar fields
// in the canonical format.
func TestTimestampAt(t *testing.T) {
	s := TimestampAt(2024, time.January, 15, 10, 30, 0)
	if s != "2024-01-15T10:30:00Z" {
		t.Errorf("TimestampAt = %q, want 2024-01-15T10:30:00Z", s)
	}
}

// TestTimestampRoundTrip verifies format -> parse -> format is the identity
// for canonical timestamps.
func TestTimestampRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2024-01-15T10:30:00Z",
		"2000-12-31T23:59:59Z",
		"2026-06-01T00:00:00Z",
	} {
		ts, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): unexpected error: %v", s, err)
		}
		if got := FormatTimestamp(ts); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

// TestParseTimestampOffsets verifies the parser accepts the Z suffix and the
// explicit +00:00 offset, and rejects everything else with a
// MalformedTimestampError.
func TestParseTimestampOffsets(t *testing.T) {
	ts, err := ParseTimestamp("2024-01-15T10:30:00+00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatTimestamp(ts); got != "2024-01-15T10:30:00Z" {
		t.Errorf("offset form normalized to %q, want 2024-01-15T10:30:00Z", got)
	}

	for _, s := range []string{
		"2024-01-15T10:30:00",       // no zone
		"2024-01-15T10:30:00+02:00", // non-UTC offset
		"2024-01-15 10:30:00Z",      // space separator
		"not-a-timestamp",
		"",
	} {
		_, err := ParseTimestamp(s)
		if err == nil {
			t.Errorf("ParseTimestamp(%q): expected error", s)
			continue
		}
		var mt *MalformedTimestampError
		if !errors.As(err, &mt) {
			t.Errorf("ParseTimestamp(%q): error = %T, want *MalformedTimestampError", s, err)
		}
	}
}
