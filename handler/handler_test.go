package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/servekit/core"
	"github.com/dmitrymomot/servekit/handler"
	"github.com/dmitrymomot/servekit/pkg/logger"
)

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handler.NotFound(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"error":"Not found","message":"Not found"}`, rec.Body.String())
}

func TestWrap(t *testing.T) {
	t.Parallel()
	eh := handler.NewErrorHandler(logger.New(logger.WithOutput(&bytes.Buffer{})))

	t.Run("success passes through", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(w http.ResponseWriter, r *http.Request) error {
			return core.JSON(http.StatusCreated, map[string]int{"id": 1}).Render(w, r)
		}, eh)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	})

	t.Run("returned error reaches the error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("boom")
		}, eh)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":500,"error":"boom","message":"boom"}`, rec.Body.String())
	})

	t.Run("errors from joined goroutines reach the error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(w http.ResponseWriter, r *http.Request) error {
			g, ctx := errgroup.WithContext(r.Context())
			g.Go(func() error {
				select {
				case <-time.After(5 * time.Millisecond):
					return core.Conflict("version mismatch")
				case <-ctx.Done():
					return ctx.Err()
				}
			})
			g.Go(func() error {
				<-ctx.Done()
				return nil
			})
			return g.Wait()
		}, eh)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPut, "/", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("nil error handler uses default", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(w http.ResponseWriter, r *http.Request) error {
			return core.Forbidden("no")
		}, nil)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRecoverer(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	eh := handler.NewErrorHandler(logger.New(logger.WithOutput(buf)))

	t.Run("panic becomes a server error", func(t *testing.T) {
		h := handler.Recoverer(eh)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() { h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil)) })
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":500,"error":"boom","message":"boom"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "goroutine")
		assert.Contains(t, buf.String(), "stack: goroutine")
	})

	t.Run("panic with client error is disclosed", func(t *testing.T) {
		h := handler.Recoverer(eh)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(core.Unauthorized("login required"))
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		h := handler.Recoverer(eh)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("no panic is a no-op", func(t *testing.T) {
		h := handler.Recoverer(eh)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := handler.NewPanicError(cause, []byte("stack"))
	assert.Equal(t, "disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []byte("stack"), err.Stack())

	assert.Equal(t, "42", handler.NewPanicError(42, nil).Error())
	assert.NoError(t, handler.NewPanicError("x", nil).Unwrap())
}
