package chat

import "errors"

var (
	ErrNotFound        = errors.New("conversation not found")
	ErrUnauthorized    = errors.New("not a participant in this conversation")
	ErrAlreadyExists   = errors.New("conversation already exists between these participants")
	ErrMessageNotFound = errors.New("message not found")
	ErrSameUser        = errors.New("cannot start a conversation with yourself")
	ErrDifferentAssoc  = errors.New("participants belong to different institutions or groups")
	ErrNoAssociation   = errors.New("user is not linked to an institution or tutor group")
	ErrEmptyMessage    = errors.New("message content is required")
)
