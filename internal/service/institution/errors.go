package institution

import "errors"

var (
	ErrNotFound       = errors.New("institution not found")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidLimit   = errors.New("capacity limits must be non-negative")
	ErrCodeGeneration = errors.New("could not generate a unique join code")
)
