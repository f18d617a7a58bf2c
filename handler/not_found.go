package handler

import (
	"net/http"

	"github.com/dmitrymomot/servekit/core"
)

var notFoundBody = core.ErrorBody{
	Code:    http.StatusNotFound,
	Error:   "Not found",
	Message: "Not found",
}

// NotFound answers requests that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = core.JSON(http.StatusNotFound, notFoundBody).Render(w, r)
}
