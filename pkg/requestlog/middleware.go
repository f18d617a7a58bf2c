package requestlog

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/servekit/pkg/logger"
	"github.com/dmitrymomot/servekit/pkg/requestid"
)

// Middleware logs a line when a request starts and another when its response
// is complete. It logs through the request's logger, so it must be installed
// after requestid.Middleware; fallback is used for requests without one.
//
// The start line carries one attribute per request header and a querystring
// attribute when the query is non-empty. The finish line carries the elapsed
// time in milliseconds under "time". The finish line is deferred, so it is
// written even when a downstream handler panics.
func Middleware(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			log := requestid.Logger(ctx, fallback)
			if log == nil {
				log = logger.Default()
			}
			id := requestid.FromContext(ctx)

			log.LogAttrs(ctx, slog.LevelInfo,
				fmt.Sprintf("start handling request %s: %s %s", id, r.Method, r.URL.Path),
				startAttrs(r)...,
			)

			defer func() {
				log.LogAttrs(ctx, slog.LevelInfo,
					fmt.Sprintf("finished handling request %s", id),
					slog.Float64("time", float64(time.Since(start))/float64(time.Millisecond)),
				)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

const querystringKey = "querystring"

func startAttrs(r *http.Request) []slog.Attr {
	query := r.URL.Query()
	attrs := make([]slog.Attr, 0, len(r.Header)+2)
	if r.Host != "" && r.Header.Get("Host") == "" {
		attrs = append(attrs, slog.String("host", r.Host))
	}
	for name, values := range r.Header {
		key := strings.ToLower(name)
		// a header must not shadow the parsed query
		if key == querystringKey && len(query) > 0 {
			key = "header-" + key
		}
		attrs = append(attrs, slog.String(key, strings.Join(values, ", ")))
	}

	if len(query) > 0 {
		qs := make(map[string]any, len(query))
		for k, v := range query {
			if len(v) == 1 {
				qs[k] = v[0]
			} else {
				qs[k] = v
			}
		}
		attrs = append(attrs, slog.Any(querystringKey, qs))
	}
	return attrs
}
