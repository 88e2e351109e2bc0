package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/document"
	"github.com/gestion-eventos/briefd/pkg/store"
)

// mapError maps domain errors to an HTTP status and a client-safe body.
func mapError(err error) (int, *ErrorResponse) {
	var validErr *brief.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, &ErrorResponse{Error: validErr.Error(), Field: validErr.Path}
	}
	if errors.Is(err, document.ErrUnknownFormat) {
		return http.StatusBadRequest, &ErrorResponse{Error: err.Error(), Field: "format"}
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, &ErrorResponse{Error: "request body too large"}
	}
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound, &ErrorResponse{Error: "event not found"}
	}

	slog.Error("Unexpected error", "error", err)
	return http.StatusInternalServerError, &ErrorResponse{Error: "internal server error"}
}

func abortWithError(c *gin.Context, err error) {
	code, body := mapError(err)
	body.RequestID = c.GetString(requestIDKey)
	c.AbortWithStatusJSON(code, body)
}
