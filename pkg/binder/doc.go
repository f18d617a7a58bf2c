// Package binder parses inbound request bodies and cookies.
//
// Middleware reads JSON (application/json) and URL-encoded form
// (application/x-www-form-urlencoded) bodies up to a size limit, stores the
// decoded value on the request context and restores the body so handlers can
// still decode it into their own types. Handlers and the error responder read
// the parsed value with BodyFromContext:
//
//	r.Use(binder.Middleware(errorHandler))
//	...
//	if body, ok := binder.BodyFromContext(r.Context()); ok {
//		// map[string]any, []any, string, float64, bool
//	}
//
// Cookies returns the Cookie header as a name/value map.
//
// # Errors
//
// Parse returns errors wrapping ErrFailedToParseJSON, ErrFailedToParseForm or
// ErrBodyTooLarge. Middleware converts them into core client errors (400 and
// 413) before handing them to its error callback.
package binder
