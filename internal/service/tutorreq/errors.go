package tutorreq

import "errors"

var (
	ErrNotFound           = errors.New("tutor request not found")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidDNI         = errors.New("DNI must be exactly 8 digits")
	ErrDuplicateRequest   = errors.New("an active tutor request already exists for this DNI or email")
	ErrNotPending         = errors.New("tutor request is not pending")
	ErrReasonRequired     = errors.New("a rejection reason is required")
	ErrVerificationFailed = errors.New("verification data does not match")
	ErrCodeGeneration     = errors.New("could not generate a unique join code")
)
