package registry

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Reason es el código estable que ve el cliente (va en el JSON de error).
type Reason string

const (
	ReasonInvalidDateRange  Reason = "invalid_date_range"
	ReasonMissingDate       Reason = "missing_date"
	ReasonNegativeAmount    Reason = "negative_amount"
	ReasonUnknownAnimal     Reason = "unknown_animal"
	ReasonUnknownBooking    Reason = "unknown_booking"
	ReasonHolidayDaysRange  Reason = "holiday_days_out_of_range"
	ReasonNegativeSurcharge Reason = "negative_holiday_surcharge"
	ReasonInvalidPrice      Reason = "invalid_price"
	ReasonPriceTooHigh      Reason = "price_too_high"
	ReasonStayTooLong       Reason = "stay_too_long"
	ReasonInvalidSizeClass  Reason = "invalid_size_class"
	ReasonInvalidStatus     Reason = "invalid_status"
	ReasonMissingName       Reason = "missing_name"
	ReasonMissingID         Reason = "missing_id"
	ReasonDuplicateID       Reason = "duplicate_id"
)

// ValidationError: la mutación se rechaza antes de tocar el estado.
type ValidationError struct {
	Reason Reason
	Field  string
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Reason, e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(reason Reason, field, msg string) *ValidationError {
	return &ValidationError{Reason: reason, Field: field, Msg: msg}
}

// NotFoundError: operación sobre un id que el registro no conoce.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ReasonOf extrae el código si err es (o envuelve) un ValidationError.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
