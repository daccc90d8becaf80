package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidDNI       = errors.New("DNI must be exactly 8 digits")
	ErrProfileComplete  = errors.New("profile is already complete")
	ErrRoleAlreadySet   = errors.New("user already has a role")
	ErrCannotRemoveSelf = errors.New("admins cannot remove their own account")
)
