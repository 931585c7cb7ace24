package core

import "errors"

var (
	// ErrInvalidArgument reports a malformed reference date, a value of the
	// wrong kind or a required field missing from the ledger schema.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound reports a missing ledger or settings source.
	ErrNotFound = errors.New("not found")
	// ErrInvalidFormat reports a source that exists but cannot be read.
	ErrInvalidFormat = errors.New("invalid format")
)
