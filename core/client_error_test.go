package core_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servekit/core"
)

func TestNewClientError(t *testing.T) {
	t.Parallel()

	t.Run("default payload", func(t *testing.T) {
		t.Parallel()
		err := core.NewClientError(http.StatusConflict, "already exists")
		assert.Equal(t, http.StatusConflict, err.StatusCode())
		assert.Equal(t, "already exists", err.Error())
		assert.Equal(t, "already exists", err.Message())
		assert.Empty(t, err.ResponseHeaders())
		assert.Equal(t, core.ErrorBody{Code: 409, Error: "Conflict", Message: "already exists"}, err.Payload())
	})

	t.Run("headers and payload", func(t *testing.T) {
		t.Parallel()
		payload := map[string]string{"msg": "bad"}
		err := core.NewClientError(http.StatusUnprocessableEntity, "bad",
			core.WithHeader("X-Foo", "bar"),
			core.WithPayload(payload),
		)
		assert.Equal(t, map[string]string{"X-Foo": "bar"}, err.ResponseHeaders())
		assert.Equal(t, payload, err.Payload())
	})

	t.Run("headers are copied", func(t *testing.T) {
		t.Parallel()
		err := core.BadRequest("x", core.WithHeader("A", "1"))
		h := err.ResponseHeaders()
		h["A"] = "2"
		assert.Equal(t, "1", err.ResponseHeaders()["A"])
	})

	t.Run("status outside 4xx is coerced", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusBadRequest, core.NewClientError(http.StatusOK, "x").StatusCode())
		assert.Equal(t, http.StatusBadRequest, core.NewClientError(http.StatusBadGateway, "x").StatusCode())
	})

	t.Run("cause is unwrapped", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("parse failure")
		err := core.BadRequest("invalid body", core.WithCause(cause))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "invalid body: parse failure", err.Error())
	})
}

func TestClassification(t *testing.T) {
	t.Parallel()

	var fault core.ClientFault
	wrapped := fmt.Errorf("handler: %w", core.Forbidden("nope"))
	require.True(t, errors.As(wrapped, &fault))
	assert.Equal(t, http.StatusForbidden, fault.StatusCode())

	assert.False(t, errors.As(errors.New("boom"), &fault))
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    *core.ClientError
		status int
	}{
		{core.BadRequest("m"), http.StatusBadRequest},
		{core.Unauthorized("m"), http.StatusUnauthorized},
		{core.Forbidden("m"), http.StatusForbidden},
		{core.NotFound("m"), http.StatusNotFound},
		{core.Conflict("m"), http.StatusConflict},
		{core.PayloadTooLarge("m"), http.StatusRequestEntityTooLarge},
		{core.UnprocessableEntity("m"), http.StatusUnprocessableEntity},
		{core.TooManyRequests("m", time.Second), http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode())
	}

	err := core.TooManyRequests("slow down", 1500*time.Millisecond)
	assert.Equal(t, "2", err.ResponseHeaders()["Retry-After"])
}
