package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("server already running")
	// ErrAddrInUse is joined with ErrStart when the port is taken.
	ErrAddrInUse = errors.New("address already in use")
	// ErrPermission is joined with ErrStart when binding the port needs elevated privileges.
	ErrPermission = errors.New("binding requires elevated privileges")
)
