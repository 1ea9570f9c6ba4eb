// Package repository defines the contract of the employee store.
// The reporting engine and the directory service depend on these interfaces only;
// postgres, mongo and memory provide the implementations.
package repository

import (
	"context"

	"github.com/YusovID/employee-directory/internal/domain"
)

// EmployeeRepository is durable keyed storage of employee records.
// Implementations guarantee per-call read-your-write and nothing across records.
// Driver failures are wrapped with apperrors.ErrStoreFailure.
type EmployeeRepository interface {
	// GetByID returns the stored employee.
	// It returns *apperrors.InvalidEmployeeIDError (matching apperrors.ErrNotFound) when absent.
	GetByID(ctx context.Context, id string) (*domain.Employee, error)

	// GetByIDs resolves a batch of ids in one round-trip. Only existing records are returned,
	// in no particular order; unknown ids are silently skipped.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error)

	// Create inserts a new record. The id must already be assigned.
	// It returns apperrors.ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)

	// Update replaces every field of an existing record and returns the stored form.
	// It returns apperrors.ErrNotFound if no record has the employee's id.
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)

	// Upsert inserts the record or replaces the one with the same id.
	Upsert(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)

	// UpdateCompensation replaces the embedded compensation of an employee.
	// It returns apperrors.ErrNotFound if the employee does not exist.
	UpdateCompensation(ctx context.Context, id string, compensation domain.Compensation) (*domain.Compensation, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
