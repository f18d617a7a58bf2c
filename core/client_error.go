package core

import (
	"maps"
	"net/http"
	"strconv"
	"time"
)

// ClientFault is implemented by errors caused by the caller. They are safe to
// disclose: the error declares the status, the response headers and the body
// sent back to the client. Any error that does not expose this capability
// (directly or through its wrap chain) is a server error.
type ClientFault interface {
	error
	StatusCode() int
	ResponseHeaders() map[string]string
	Payload() any
}

// ClientError is the canonical ClientFault.
type ClientError struct {
	status  int
	headers map[string]string
	message string
	payload any
	cause   error
}

var _ ClientFault = (*ClientError)(nil)

// ClientErrorOption configures a ClientError.
type ClientErrorOption func(*ClientError)

// WithHeader adds a response header sent along with the error.
func WithHeader(name, value string) ClientErrorOption {
	return func(e *ClientError) {
		if e.headers == nil {
			e.headers = make(map[string]string)
		}
		e.headers[name] = value
	}
}

// WithPayload replaces the default response body.
func WithPayload(payload any) ClientErrorOption {
	return func(e *ClientError) { e.payload = payload }
}

// WithCause records the underlying error, exposed via Unwrap.
func WithCause(err error) ClientErrorOption {
	return func(e *ClientError) { e.cause = err }
}

// NewClientError creates a client error. Statuses outside 400-499 are
// coerced to 400. Without WithPayload the body is an ErrorBody with the
// status, its standard text and message.
func NewClientError(status int, message string, opts ...ClientErrorOption) *ClientError {
	if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
		status = http.StatusBadRequest
	}
	e := &ClientError{status: status, message: message}
	for _, opt := range opts {
		opt(e)
	}
	if e.payload == nil {
		e.payload = ErrorBody{
			Code:    status,
			Error:   http.StatusText(status),
			Message: message,
		}
	}
	return e
}

func (e *ClientError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *ClientError) Unwrap() error { return e.cause }

func (e *ClientError) StatusCode() int { return e.status }

func (e *ClientError) Message() string { return e.message }

func (e *ClientError) Payload() any { return e.payload }

// ResponseHeaders returns a copy of the declared headers.
func (e *ClientError) ResponseHeaders() map[string]string {
	return maps.Clone(e.headers)
}

// BadRequest creates a 400 client error.
func BadRequest(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusBadRequest, message, opts...)
}

// Unauthorized creates a 401 client error.
func Unauthorized(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusUnauthorized, message, opts...)
}

// Forbidden creates a 403 client error.
func Forbidden(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusForbidden, message, opts...)
}

// NotFound creates a 404 client error.
func NotFound(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusNotFound, message, opts...)
}

// Conflict creates a 409 client error.
func Conflict(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusConflict, message, opts...)
}

// PayloadTooLarge creates a 413 client error.
func PayloadTooLarge(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusRequestEntityTooLarge, message, opts...)
}

// UnprocessableEntity creates a 422 client error.
func UnprocessableEntity(message string, opts ...ClientErrorOption) *ClientError {
	return NewClientError(http.StatusUnprocessableEntity, message, opts...)
}

// TooManyRequests creates a 429 client error with a Retry-After header
// rounded up to whole seconds.
func TooManyRequests(message string, retryAfter time.Duration, opts ...ClientErrorOption) *ClientError {
	secs := int((retryAfter + time.Second - 1) / time.Second)
	opts = append([]ClientErrorOption{WithHeader("Retry-After", strconv.Itoa(secs))}, opts...)
	return NewClientError(http.StatusTooManyRequests, message, opts...)
}
