package service

import (
	"context"

	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/events"
	"github.com/YusovID/employee-directory/internal/repository"
	"github.com/stretchr/testify/mock"
)

type EmployeeRepositoryMock struct {
	mock.Mock
}

var _ repository.EmployeeRepository = (*EmployeeRepositoryMock)(nil)

func (m *EmployeeRepositoryMock) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeRepositoryMock) GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *EmployeeRepositoryMock) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	if fn, ok := args.Get(0).(func(context.Context, *domain.Employee) *domain.Employee); ok {
		return fn(ctx, employee), args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeRepositoryMock) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	if fn, ok := args.Get(0).(func(context.Context, *domain.Employee) *domain.Employee); ok {
		return fn(ctx, employee), args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeRepositoryMock) Upsert(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeRepositoryMock) UpdateCompensation(ctx context.Context, id string, c domain.Compensation) (*domain.Compensation, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Compensation), args.Error(1)
}

type ReportingEngineMock struct {
	mock.Mock
}

var _ ReportingEngine = (*ReportingEngineMock)(nil)

func (m *ReportingEngineMock) Compute(ctx context.Context, rootID string) (*domain.ReportingStructure, error) {
	args := m.Called(ctx, rootID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ReportingStructure), args.Error(1)
}

type PublisherMock struct {
	mock.Mock
}

var _ events.Publisher = (*PublisherMock)(nil)

func (m *PublisherMock) Publish(ctx context.Context, event events.EmployeeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
