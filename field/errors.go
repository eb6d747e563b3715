package field

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor is returned when a 32-byte descriptor image cannot
	// describe a column.
	ErrInvalidDescriptor = errors.New("invalid field descriptor")

	// ErrInvalidData is returned when field bytes cannot be interpreted as a
	// value of the declared type.
	ErrInvalidData = errors.New("invalid field data")
)

// DecodeError reports field bytes that could not be interpreted.
//
// It matches ErrInvalidData under errors.Is; the declared type and the
// offending bytes are available via errors.As.
type DecodeError struct {
	Type Type
	Data []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s data: %q", e.Type, e.Data)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidData }
