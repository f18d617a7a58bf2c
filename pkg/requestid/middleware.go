package requestid

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/dmitrymomot/servekit/pkg/idgen"
	"github.com/dmitrymomot/servekit/pkg/logger"
)

// Header is the response header carrying the request id. With
// WithTrustedHeader it is also read from the request.
const Header = "X-Request-ID"

const (
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Option configures Middleware.
type Option func(*options)

type options struct {
	generator   idgen.Generator
	trustHeader bool
}

// WithGenerator sets the function producing request ids. Nil is ignored.
func WithGenerator(g idgen.Generator) Option {
	return func(o *options) {
		if g != nil {
			o.generator = g
		}
	}
}

// WithTrustedHeader reuses a valid id supplied by the caller in the
// X-Request-ID header instead of generating one. Use it only behind a proxy
// that sets the header itself.
func WithTrustedHeader() Option {
	return func(o *options) { o.trustHeader = true }
}

// Middleware assigns every request an id and a logger bound to that id.
// Both are stored on the request context (see FromContext and Logger) and the
// id is echoed in the X-Request-ID response header. It must run before any
// middleware that logs. A request that already carries an id is passed
// through unchanged.
func Middleware(log *slog.Logger, opts ...Option) func(http.Handler) http.Handler {
	o := &options{generator: idgen.Default}
	for _, opt := range opts {
		opt(o)
	}
	if log == nil {
		log = logger.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := fromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			requestID := ""
			if o.trustHeader {
				if h := r.Header.Get(Header); isValidRequestID(h) {
					requestID = h
				}
			}
			if requestID == "" {
				requestID = o.generator()
			}

			reqLog := logger.Bind(log, logger.RequestID(requestID))
			w.Header().Set(Header, requestID)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID, reqLog)))
		})
	}
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
