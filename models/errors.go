package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// DataValidationError is the single error kind for every field or state
// validation failure in this package: a missing key, a wrong-typed value, an
// unknown category name, or a mutation attempted on an unpersisted product.
// Callers match it with errors.As rather than inspecting varied error types.
type DataValidationError struct {
	Field  string
	Reason string
}

func (e *DataValidationError) Error() string {
	if e.Field == "" {
		return "invalid product: " + e.Reason
	}
	return fmt.Sprintf("invalid product: %s: %s", e.Field, e.Reason)
}

func missingKeyError(key string) error {
	return &DataValidationError{Field: key, Reason: "required key is missing"}
}

func wrongTypeError(field, want string, got any) error {
	return &DataValidationError{
		Field:  field,
		Reason: fmt.Sprintf("expected %s, got %T", want, got),
	}
}

func missingIDError(op string) error {
	return &DataValidationError{
		Field:  "id",
		Reason: op + " called on a product that was never persisted",
	}
}
