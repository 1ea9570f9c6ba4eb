// Package service implements the employee directory operations on top of the employee
// store, the reporting engine and the lifecycle event publisher.
package service

import (
	"context"
	"log/slog"

	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/events"
	"github.com/YusovID/employee-directory/internal/repository"
	"github.com/YusovID/employee-directory/pkg/logger/sl"
)

type EmployeeService interface {
	Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	Read(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, employee domain.Employee) (*domain.Employee, error)
	ReportingStructure(ctx context.Context, id string) (*domain.ReportingStructure, error)
	Compensation(ctx context.Context, id string) (*domain.Compensation, error)
	UpdateCompensation(ctx context.Context, id string, compensation domain.Compensation) (*domain.Compensation, error)
}

type ReportingEngine interface {
	Compute(ctx context.Context, rootID string) (*domain.ReportingStructure, error)
}

type EmployeeServiceImpl struct {
	repo      repository.EmployeeRepository
	engine    ReportingEngine
	publisher events.Publisher
	log       *slog.Logger
}

func NewEmployeeService(
	repo repository.EmployeeRepository,
	engine ReportingEngine,
	publisher events.Publisher,
	log *slog.Logger,
) *EmployeeServiceImpl {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &EmployeeServiceImpl{
		repo:      repo,
		engine:    engine,
		publisher: publisher,
		log:       log,
	}
}

// publish never fails the calling operation; the write is already durable.
func (s *EmployeeServiceImpl) publish(ctx context.Context, op, eventType, employeeID string) {
	if err := s.publisher.Publish(ctx, events.NewEmployeeEvent(eventType, employeeID)); err != nil {
		s.log.Warn("failed to publish employee event",
			slog.String("op", op),
			slog.String("event_type", eventType),
			slog.String("employee_id", employeeID),
			sl.Err(err),
		)
	}
}
