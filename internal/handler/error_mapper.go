package handler

import (
	"errors"

	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API. Infrastructure errors
// never leak details to the client.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrApplicationNotFound):
		return model.NewNotFoundError("application")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrInvalidStatusFilter),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, service.ErrInvalidSeedCount):
		return model.NewBadRequestError(err.Error())

	// ===== Everything Else → 500 =====
	default:
		// Database and configuration failures get a generic message
		return model.NewInternalError("")
	}
}
