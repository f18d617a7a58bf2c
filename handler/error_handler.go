package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/servekit/core"
	"github.com/dmitrymomot/servekit/pkg/binder"
	"github.com/dmitrymomot/servekit/pkg/logger"
	"github.com/dmitrymomot/servekit/pkg/requestid"
)

// ErrorHandler is the terminal stage for failed requests. It decides and
// writes the response for err.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// stackTracer is implemented by errors that carry a stack trace.
type stackTracer interface {
	Stack() []byte
}

// NewErrorHandler creates the error classifier and responder.
//
// Client errors (anything exposing core.ClientFault) are answered with their
// own status, headers and payload. Every other error is a server error: it is
// logged with the method, path, parsed request body and, when available, the
// stack trace, and answered with a 500 whose body holds the error message
// only.
//
// Logging goes through the request's logger; fallback is used for requests
// that were not intercepted by requestid.Middleware.
func NewErrorHandler(fallback *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if err == nil {
			return
		}
		log := requestid.Logger(r.Context(), fallback)
		if log == nil {
			log = logger.Default()
		}

		var fault core.ClientFault
		if errors.As(err, &fault) {
			handleClientError(log, w, r, err, fault)
			return
		}
		handleServerError(log, w, r, err)
	}
}

func handleClientError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, fault core.ClientFault) {
	log.ErrorContext(r.Context(), "client error (4xx)",
		logger.Error(err),
		slog.Int("status", fault.StatusCode()),
	)
	if responseStarted(w) {
		log.ErrorContext(r.Context(), "cannot write error response", logger.Error(ErrResponseStarted))
		return
	}

	for name, value := range fault.ResponseHeaders() {
		w.Header().Set(name, value)
	}
	payload := fault.Payload()
	if payload == nil {
		w.WriteHeader(fault.StatusCode())
		return
	}
	if renderErr := core.JSON(fault.StatusCode(), payload).Render(w, r); renderErr != nil {
		log.ErrorContext(r.Context(), "failed to render client error", logger.Error(renderErr))
	}
}

func handleServerError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	log.ErrorContext(r.Context(), "server error (5xx)", slog.String("details", diagnostic(r, err)))
	if responseStarted(w) {
		log.ErrorContext(r.Context(), "cannot write error response", logger.Error(ErrResponseStarted))
		return
	}

	msg := err.Error()
	body := core.ErrorBody{Code: http.StatusInternalServerError, Error: msg, Message: msg}
	if msg == "" {
		body.Error = "Server error"
	}
	if renderErr := core.JSON(http.StatusInternalServerError, body).Render(w, r); renderErr != nil {
		log.ErrorContext(r.Context(), "failed to render server error", logger.Error(renderErr))
	}
}

// diagnostic composes the log-only description of a server error.
func diagnostic(r *http.Request, err error) string {
	payload := "null"
	if body, ok := binder.BodyFromContext(r.Context()); ok {
		if raw, jsonErr := json.Marshal(body); jsonErr == nil {
			payload = string(raw)
		} else {
			payload = fmt.Sprintf("%v", body)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error\n\tmethod: %s\n\tpath: %s\n\tpayload: %s\n", r.Method, r.URL.RequestURI(), payload)

	var st stackTracer
	if errors.As(err, &st) && err.Error() != "" {
		fmt.Fprintf(&b, "\tmessage: %s\n\tstack: %s", err.Error(), st.Stack())
	} else {
		fmt.Fprintf(&b, "\tmessage: %s", err.Error())
	}
	return b.String()
}

// responseStarted reports whether headers were already written through w.
func responseStarted(w http.ResponseWriter) bool {
	ww, ok := w.(middleware.WrapResponseWriter)
	return ok && ww.Status() != 0
}
