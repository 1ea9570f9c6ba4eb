package http

import (
	"context"

	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/service"
	"github.com/stretchr/testify/mock"
)

type EmployeeServiceMock struct {
	mock.Mock
}

var _ service.EmployeeService = (*EmployeeServiceMock)(nil)

func (m *EmployeeServiceMock) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeServiceMock) Read(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeServiceMock) Update(ctx context.Context, id string, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, id, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeServiceMock) ReportingStructure(ctx context.Context, id string) (*domain.ReportingStructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ReportingStructure), args.Error(1)
}

func (m *EmployeeServiceMock) Compensation(ctx context.Context, id string) (*domain.Compensation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Compensation), args.Error(1)
}

func (m *EmployeeServiceMock) UpdateCompensation(ctx context.Context, id string, c domain.Compensation) (*domain.Compensation, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Compensation), args.Error(1)
}

type HealthCheckerMock struct {
	mock.Mock
}

func (m *HealthCheckerMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
