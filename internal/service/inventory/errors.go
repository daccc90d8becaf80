package inventory

import "errors"

var (
	ErrUnknownQuestion       = errors.New("question does not exist in the inventory")
	ErrInvalidAnswer         = errors.New("answer must be yes or no")
	ErrLocked                = errors.New("inventory is locked; a result has already been recorded")
	ErrNotReady              = errors.New("inventory is not fully answered yet")
	ErrNotFound              = errors.New("prediction record not found")
	ErrClassifierUnavailable = errors.New("classification service is unavailable")
	ErrEmptyBank             = errors.New("question bank is empty")
	ErrQuestionPositionTaken = errors.New("a question already exists at this position")
)
