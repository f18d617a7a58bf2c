package handler

import "net/http"

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing an error response itself.
//
// Work started in other goroutines must be joined before returning so its
// errors reach the error handler, for example with errgroup:
//
//	func(w http.ResponseWriter, r *http.Request) error {
//		g, ctx := errgroup.WithContext(r.Context())
//		g.Go(func() error { return loadProfile(ctx) })
//		g.Go(func() error { return loadOrders(ctx) })
//		if err := g.Wait(); err != nil {
//			return err
//		}
//		return core.JSON(http.StatusOK, result).Render(w, r)
//	}
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap converts h into an http.HandlerFunc that passes returned errors to
// errorHandler. A nil errorHandler uses NewErrorHandler with the default logger.
func Wrap(h HandlerFunc, errorHandler ErrorHandler) http.HandlerFunc {
	if errorHandler == nil {
		errorHandler = NewErrorHandler(nil)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			errorHandler(w, r, err)
		}
	}
}
