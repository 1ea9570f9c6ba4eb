package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/events"
	"github.com/google/uuid"
)

// Create stores a new employee under a freshly generated id. Any id on the input is ignored.
func (s *EmployeeServiceImpl) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	const op = "internal.service.Create"

	employee = employee.Clone()
	employee.EmployeeID = uuid.NewString()

	created, err := s.repo.Create(ctx, &employee)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("employee created", slog.String("op", op), slog.String("employee_id", created.EmployeeID))
	s.publish(ctx, op, events.EmployeeCreated, created.EmployeeID)

	return created, nil
}

func (s *EmployeeServiceImpl) Read(ctx context.Context, id string) (*domain.Employee, error) {
	const op = "internal.service.Read"

	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return employee, nil
}

// Update replaces every field of the employee stored under id. The id in the body is ignored.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, employee domain.Employee) (*domain.Employee, error) {
	const op = "internal.service.Update"

	employee = employee.Clone()
	employee.EmployeeID = id

	updated, err := s.repo.Update(ctx, &employee)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("employee updated", slog.String("op", op), slog.String("employee_id", id))
	s.publish(ctx, op, events.EmployeeUpdated, id)

	return updated, nil
}

func (s *EmployeeServiceImpl) ReportingStructure(ctx context.Context, id string) (*domain.ReportingStructure, error) {
	const op = "internal.service.ReportingStructure"

	structure, err := s.engine.Compute(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return structure, nil
}

// Compensation returns the zero value when the employee exists but has none recorded.
func (s *EmployeeServiceImpl) Compensation(ctx context.Context, id string) (*domain.Compensation, error) {
	const op = "internal.service.Compensation"

	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if employee.Compensation == nil {
		return &domain.Compensation{}, nil
	}

	c := *employee.Compensation

	return &c, nil
}

func (s *EmployeeServiceImpl) UpdateCompensation(ctx context.Context, id string, compensation domain.Compensation) (*domain.Compensation, error) {
	const op = "internal.service.UpdateCompensation"

	stored, err := s.repo.UpdateCompensation(ctx, id, compensation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("compensation updated", slog.String("op", op), slog.String("employee_id", id))
	s.publish(ctx, op, events.EmployeeCompensationUpdated, id)

	return stored, nil
}
