package handler

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
)

// Recoverer turns panics raised by downstream handlers into *PanicError
// values and hands them to errorHandler, so a panicking handler gets the same
// 500 response as one returning an error. http.ErrAbortHandler is re-raised
// to keep its connection-abort semantics.
//
// It also wraps the response writer so the error handler can tell whether
// the response was already started.
func Recoverer(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = NewErrorHandler(nil)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				errorHandler(ww, r, NewPanicError(rec, debug.Stack()))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
