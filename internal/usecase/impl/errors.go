package impl

import (
	"strings"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/errors"
)

// toAppError maps domain and repository sentinels onto the error taxonomy.
// Errors that already are AppErrors pass through unchanged.
func toAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.IsAny(err, entity.ErrEmptyCart, entity.ErrInvalidCartItem):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	case errors.IsAny(err, entity.ErrAddressNotInBook, repository.ErrAddressNotFound):
		return domainerrors.ErrAddressNotFound.WithDetails(err.Error())
	case errors.Is(err, entity.ErrAddressLimitReached):
		return domainerrors.ErrAddressLimitReached.WithDetails(err.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrAddressBookConflict.WithDetails(err.Error())
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound.WithDetails(err.Error())
	case errors.Is(err, entity.ErrPaymentConflict):
		return domainerrors.ErrPaymentConflict.WithDetails(err.Error())
	case errors.IsAny(err, entity.ErrInvalidTransition, repository.ErrOrderConflict):
		return domainerrors.ErrInvalidStatusTransition.WithDetails(err.Error())
	default:
		return err
	}
}

func missingFieldsError(missing []string) error {
	return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
}

// isOrderStateError reports whether err comes from the order's own state rather than the store.
func isOrderStateError(err error) bool {
	return errors.IsAny(err,
		repository.ErrOrderNotFound,
		repository.ErrOrderConflict,
		entity.ErrPaymentConflict,
		entity.ErrInvalidTransition,
	)
}
