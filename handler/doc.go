// Package handler implements the terminal stages of the HTTP pipeline: the
// error classifier and responder, the not-found responder, panic recovery and
// an adapter for handlers that return errors.
//
// Every failure of a request ends up in a single ErrorHandler, whatever its
// origin:
//
//   - errors returned by a HandlerFunc wrapped with Wrap;
//   - panics, recovered by Recoverer and wrapped in *PanicError;
//   - errors raised by middleware that accepts an error callback, such as
//     binder.Middleware.
//
// NewErrorHandler classifies the error with errors.As against
// core.ClientFault. Client errors are disclosed: their status, headers and
// payload are sent as declared. Anything else is a server error, logged with
// full diagnostics (including the stack of recovered panics) and answered
// with
//
//	{"code":500,"error":"<message or \"Server error\">","message":"<message>"}
//
// The stack trace never appears in the response body.
//
// # Usage
//
//	errorHandler := handler.NewErrorHandler(log)
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware(log))
//	r.Use(requestlog.Middleware(log))
//	r.Use(binder.Middleware(errorHandler))
//	r.Use(handler.Recoverer(errorHandler))
//	r.NotFound(handler.NotFound)
//	r.Post("/orders", handler.Wrap(createOrder, errorHandler))
package handler
