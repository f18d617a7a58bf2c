package core_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servekit/core"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := core.JSON(http.StatusNotFound, core.ErrorBody{Code: 404, Error: "Not found", Message: "Not found"}).
		Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"error":"Not found","message":"Not found"}`, rec.Body.String())
}

func TestErrorBodyOmitsEmptyMessage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, core.JSON(http.StatusInternalServerError, core.ErrorBody{Code: 500, Error: "Server error"}).
		Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.JSONEq(t, `{"code":500,"error":"Server error"}`, rec.Body.String())
}
