package snapshot

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrMalformedRecord is matched by every MalformedRecord.
	ErrMalformedRecord = errors.New("snapshot: malformed record")
	// ErrMissingDelimiter marks a line without a ':'.
	ErrMissingDelimiter = errors.New("missing ':' delimiter")
	// ErrEmptyKey marks a line whose key segment is empty.
	ErrEmptyKey = errors.New("empty key")
	// ErrEmptyValue marks a line whose value segment is empty.
	ErrEmptyValue = errors.New("empty value")
)

// MalformedRecord describes one snapshot line that Load skipped.
type MalformedRecord struct {
	// Line is the 1-based line number in the source.
	Line int
	// Text is the raw line without its terminator.
	Text   string
	Reason error
}

func (r *MalformedRecord) Error() string {
	return fmt.Sprintf("snapshot: malformed record at line %d (%q): %v", r.Line, r.Text, r.Reason)
}

// Unwrap exposes both ErrMalformedRecord and the specific reason to
// errors.Is.
func (r *MalformedRecord) Unwrap() []error {
	return []error{ErrMalformedRecord, r.Reason}
}
