package enrollment

import "errors"

var (
	ErrInvalidCode     = errors.New("join code does not match any institution or tutor group")
	ErrQuotaExceeded   = errors.New("capacity limit reached for this code")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyLinked   = errors.New("user is already linked to an institution or tutor group")
	ErrInvalidRoleHint = errors.New("role must be student or tutor")
)
