package plan

import "fmt"

// MalformedInputError reports input that could not be decoded as a JSON
// object at all. It is distinct from validation failure: a malformed
// document has no paths to report against.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return "malformed plan input: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed plan input: " + e.Reason
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// MalformedTimestampError reports a timestamp string outside the accepted
// canonical forms.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: want %q or a +00:00 offset", e.Value, TimestampLayout)
}

// ValidationError carries every violation found in one validation pass,
// in document order.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	switch len(e.Issues) {
	case 0:
		return "plan validation failed"
	case 1:
		return fmt.Sprintf("plan validation failed: %s: %s", e.Issues[0].Path, e.Issues[0].Message)
	default:
		return fmt.Sprintf("plan validation failed: %d violations (first: %s: %s)",
			len(e.Issues), e.Issues[0].Path, e.Issues[0].Message)
	}
}
