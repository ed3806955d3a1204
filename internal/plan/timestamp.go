package plan

import "time"

// TimestampLayout is the canonical timestamp form used throughout plan
// documents: UTC, second precision, literal Z suffix.
const TimestampLayout = "2006-01-02T15:04:05Z"

// timestampOffsetLayout accepts the explicit UTC offset spelling produced by
// some ISO-8601 serializers.
const timestampOffsetLayout = "2006-01-02T15:04:05+00:00"

// NowTimestamp returns the current UTC instant in canonical form,
// e.g. "2024-01-15T10:30:00Z".
func NowTimestamp() string {
	return FormatTimestamp(time.Now())
}

// TimestampAt builds a canonical timestamp from explicit UTC calendar fields.
func TimestampAt(year int, month time.Month, day, hour, min, sec int) string {
	return FormatTimestamp(time.Date(year, month, day, hour, min, sec, 0, time.UTC))
}

// FormatTimestamp normalizes any instant to the canonical form. Sub-second
// precision is dropped.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a canonical timestamp. Both the "Z" suffix and the
// explicit "+00:00" offset are accepted; anything else (missing zone,
// non-UTC offset) fails with a *MalformedTimestampError. Canonical
// timestamps round-trip: ParseTimestamp(FormatTimestamp(t)) recovers t to
// the second.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{TimestampLayout, timestampOffsetLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &MalformedTimestampError{Value: s}
}
