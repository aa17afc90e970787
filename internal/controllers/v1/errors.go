package v1

import (
	"errors"
	"net/http"

	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/internal/projection"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if models.IsNotFound(err) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Projection errors
var errNoCurrentBalance = errors.New("no current balance is available: the store has no transaction with a balance and the request did not provide one")

// projectionStatus maps projection validation errors. They are never
// retryable, so everything surfaces as a bad request.
func projectionStatus(err error) int {
	switch {
	case errors.Is(err, projection.ErrMonthsInvalid),
		errors.Is(err, projection.ErrFrequencyInvalid),
		errors.Is(err, projection.ErrAmountOutOfRange),
		errors.Is(err, errNoCurrentBalance):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
