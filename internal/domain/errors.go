package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when statistics or reports are requested for an
// empty sequence of readings.
var ErrEmptyInput = errors.New("empty input")

// ParseError reports a malformed input row, date, or temperature.
// Line is the 1-based line in the source file, or 0 when the value did not
// come from a file.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s %q on line %d: %v", e.Field, e.Value, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
