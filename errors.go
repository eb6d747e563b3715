package dbfgo

import (
	"errors"
)

var (
	// ErrMalformedHeader is returned when the fixed 32-byte table header is
	// internally inconsistent: a header length that cannot hold the
	// descriptor table plus its terminator, or a zero record length.
	//
	// A header that cannot be read at all surfaces as the underlying IO
	// error instead, wrapped with position context.
	ErrMalformedHeader = errors.New("malformed table header")

	// ErrUnexpectedTerminator is returned when the byte after the last field
	// descriptor is not the expected 0x0D. The wrapped message carries the
	// byte actually seen.
	ErrUnexpectedTerminator = errors.New("unexpected field descriptor terminator")
)
