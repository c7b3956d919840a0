package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText       = errors.New("task text cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTextTooLong     = errors.New("task text is too long")
	ErrNoEditSession   = errors.New("no edit in progress")
	ErrNoClipboard     = errors.New("clipboard is not available")
	ErrUnknownFormat   = errors.New("unknown config file format")
	ErrConfigExists    = errors.New("config file already exists")
	ErrInvalidLogLevel = errors.New("invalid log level")
)
