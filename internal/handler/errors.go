package handler

import (
	"errors"

	"bakery-pos-api/internal/service"
	"bakery-pos-api/pkg/apierror"
)

// serviceError maps service-layer errors onto API errors. Business-rule
// violations become 409s, validation failures 400s, missing resources 404s;
// anything else stays a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrDayNotStarted),
		errors.Is(err, service.ErrInsufficientStock):
		return apierror.Conflict(err.Error())
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrHistoryNotFound):
		return apierror.NotFound(err.Error())
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidCart),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidBackup):
		return apierror.BadRequest(err.Error())
	default:
		return err
	}
}
