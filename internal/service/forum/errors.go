package forum

import "errors"

var (
	ErrPostNotFound    = errors.New("forum post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrUnauthorized    = errors.New("not allowed to modify this content")
	ErrNoAssociation   = errors.New("user is not linked to an institution or tutor group")
	ErrMissingField    = errors.New("missing required field")
)
