// Package memory is a process-local employee store used for local runs and tests.
// Records are copied on the way in and out; callers never share slices with the store.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/YusovID/employee-directory/internal/apperrors"
	"github.com/YusovID/employee-directory/internal/domain"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]domain.Employee
	log       *slog.Logger
}

func NewEmployeeRepository(log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[string]domain.Employee),
		log:       log,
	}
}

func normalize(e domain.Employee) domain.Employee {
	out := e.Clone()
	if out.DirectReports == nil {
		out.DirectReports = []string{}
	}

	return out
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("internal.repository.memory.GetByID: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, &apperrors.InvalidEmployeeIDError{ID: id}
	}

	out := e.Clone()

	return &out, nil
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("internal.repository.memory.GetByIDs: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	employees := make([]domain.Employee, 0, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if e, ok := r.employees[id]; ok {
			employees = append(employees, e.Clone())
		}
	}

	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.memory.Create"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[e.EmployeeID]; ok {
		return nil, &apperrors.EmployeeAlreadyExistsError{ID: e.EmployeeID}
	}

	stored := normalize(*e)
	r.employees[e.EmployeeID] = stored

	r.log.Debug("employee inserted", slog.String("op", op), slog.String("employee_id", e.EmployeeID))

	out := stored.Clone()

	return &out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("internal.repository.memory.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[e.EmployeeID]; !ok {
		return nil, &apperrors.InvalidEmployeeIDError{ID: e.EmployeeID}
	}

	stored := normalize(*e)
	r.employees[e.EmployeeID] = stored

	out := stored.Clone()

	return &out, nil
}

func (r *EmployeeRepository) Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("internal.repository.memory.Upsert: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := normalize(*e)
	r.employees[e.EmployeeID] = stored

	out := stored.Clone()

	return &out, nil
}

func (r *EmployeeRepository) UpdateCompensation(ctx context.Context, id string, c domain.Compensation) (*domain.Compensation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("internal.repository.memory.UpdateCompensation: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, &apperrors.InvalidEmployeeIDError{ID: id}
	}

	stored := c
	e.Compensation = &stored
	r.employees[id] = e

	out := c

	return &out, nil
}

func (r *EmployeeRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("internal.repository.memory.Ping: %w", err)
	}

	return nil
}
