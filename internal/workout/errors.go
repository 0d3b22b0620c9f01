package workout

import "fmt"

// ParseError is returned when the data file holds content that is not a valid
// JSON list of records.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid workouts JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DateParseError carries the date string that could not be parsed.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// WriteError wraps a failure to persist records.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save workouts to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
