package binder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/servekit/core"
)

// DefaultMaxBodySize is the default maximum size for parsed request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

type bodyKey struct{}

// WithBody returns a copy of ctx carrying the parsed request body.
func WithBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

// BodyFromContext returns the body parsed by Middleware. ok is false when the
// request had no body or its media type is not parsed.
func BodyFromContext(ctx context.Context) (body any, ok bool) {
	if ctx == nil {
		return nil, false
	}
	body = ctx.Value(bodyKey{})
	return body, body != nil
}

// Parse reads a JSON or URL-encoded form body. JSON is decoded into generic
// values; a form becomes map[string]any holding a string for single-valued
// fields and []string otherwise. Other media types and empty bodies yield
// (nil, nil). The body is restored so handlers can read it again.
func Parse(r *http.Request, maxSize int64) (any, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" && mediaType != "application/x-www-form-urlencoded" {
		return nil, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(raw)) > maxSize {
		return nil, fmt.Errorf("%w (max %d bytes)", ErrBodyTooLarge, maxSize)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	if mediaType == "application/json" {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, errors.Join(ErrFailedToParseJSON, err)
		}
		return v, nil
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseForm, err)
	}
	form := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			form[k] = v[0]
		} else {
			form[k] = v
		}
	}
	return form, nil
}

// Option configures Middleware.
type Option func(*options)

type options struct {
	maxSize int64
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// Middleware parses the request body with Parse and stores the result on the
// request context. Malformed bodies are reported to onError as 400 client
// errors, oversized ones as 413.
func Middleware(onError func(http.ResponseWriter, *http.Request, error), opts ...Option) func(http.Handler) http.Handler {
	o := &options{maxSize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := Parse(r, o.maxSize)
			if err != nil {
				onError(w, r, toClientError(err))
				return
			}
			if body != nil {
				r = r.WithContext(WithBody(r.Context(), body))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func toClientError(err error) error {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return core.PayloadTooLarge("Request body too large", core.WithCause(err))
	case errors.Is(err, ErrFailedToParseJSON):
		return core.BadRequest("Malformed JSON body", core.WithCause(err))
	case errors.Is(err, ErrFailedToParseForm):
		return core.BadRequest("Malformed form body", core.WithCause(err))
	default:
		return err
	}
}
