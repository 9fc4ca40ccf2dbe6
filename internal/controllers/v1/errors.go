package v1

import (
	"errors"
	"net/http"

	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/models"
)

// status returns the HTTP status that matches the error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, engine.ErrReconciliation) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserIDParameter = errors.New("the userId parameter must be set")
	errMonthParameter  = errors.New("the month parameter must be set")
)
