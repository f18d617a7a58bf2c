package logger

import "errors"

var (
	// ErrUnknownTarget is returned by Init for a target type it cannot build.
	ErrUnknownTarget = errors.New("unknown log target type")
	// ErrOpenTarget is returned by Init when a file target cannot be opened.
	ErrOpenTarget = errors.New("failed to open log target")
)
