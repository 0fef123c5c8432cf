package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrTaskNotFound      = errors.New("task not found")
	ErrUnsupportedAction = errors.New("unsupported task action")
	ErrRateLimited       = errors.New("too many assisted creation requests")
)
