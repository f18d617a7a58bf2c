package handler

import (
	"errors"
	"fmt"
)

// ErrResponseStarted is logged when an error surfaces after the response
// headers were already sent and no error response can be written.
var ErrResponseStarted = errors.New("response already started")

// PanicError is a recovered panic. It carries the stack of the panicking
// goroutine, which is logged but never sent to the client.
type PanicError struct {
	Value any
	stack []byte
}

// NewPanicError wraps a recovered value together with its stack trace.
func NewPanicError(v any, stack []byte) *PanicError {
	return &PanicError{Value: v, stack: stack}
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Stack returns the stack trace captured at recovery.
func (e *PanicError) Stack() []byte { return e.stack }
