package v1

import (
	"errors"
	"net/http"

	"github.com/spendwise-app/backend/internal/budget"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/uuid"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, budget.ErrNoActiveBudget):
		return http.StatusNotFound
	case errors.Is(err, budget.ErrBudgetActive):
		return http.StatusConflict
	case errors.Is(err, models.ErrValidation), errors.Is(err, uuid.ErrInvalid):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
