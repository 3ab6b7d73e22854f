package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/ingest"
	"github.com/credlens/pundit/pkg/services"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// respondServiceError maps repository-layer errors onto HTTP statuses.
// Unexpected errors are logged server-side and surfaced as an opaque 500,
// with any credential material masked out of the payload.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, errorBody{Error: validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{Error: "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody{Error: "resource already exists"})
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, ingest.ErrUnrecognizedURL):
		c.JSON(http.StatusBadRequest, errorBody{Error: config.MaskSecrets(err.Error())})
	default:
		slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
}
