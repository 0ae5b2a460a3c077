package v1

import (
	"errors"
	"net/http"

	"github.com/costtrack/backend/internal/models"
)

// httpError is the wire format for all failures.
type httpError struct {
	Code    int    `json:"code" example:"-1"`
	Message string `json:"message" example:"the month must be between 1 and 12"`
}

func newHTTPError(err error) httpError {
	return httpError{
		Code:    -1,
		Message: err.Error(),
	}
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
