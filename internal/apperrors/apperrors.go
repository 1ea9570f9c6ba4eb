// Package apperrors defines the error taxonomy shared by the stores, the service and the transport.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrStoreFailure marks any failure originating from the employee store
	// (connectivity, serialization, driver errors).
	ErrStoreFailure = errors.New("employee store failure")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")
)

// InvalidEmployeeIDError reports an employeeId that does not resolve to a stored employee.
type InvalidEmployeeIDError struct{ ID string }

func (e *InvalidEmployeeIDError) Error() string {
	return fmt.Sprintf("invalid employeeId: %s", e.ID)
}
func (e *InvalidEmployeeIDError) Is(target error) bool { return target == ErrNotFound }

type EmployeeAlreadyExistsError struct{ ID string }

func (e *EmployeeAlreadyExistsError) Error() string {
	return fmt.Sprintf("employee '%s' already exists", e.ID)
}
func (e *EmployeeAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// StoreFailure wraps err so that errors.Is(result, ErrStoreFailure) holds.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, op, err)
}
