package http

import "github.com/YusovID/employee-directory/internal/domain"

type employeeRequest struct {
	EmployeeID    string               `json:"employeeId" validate:"omitempty,employee_id"`
	FirstName     string               `json:"firstName" validate:"max=255"`
	LastName      string               `json:"lastName" validate:"max=255"`
	Position      string               `json:"position" validate:"max=255"`
	Department    string               `json:"department" validate:"max=255"`
	DirectReports []string             `json:"directReports" validate:"omitempty,max=10000,dive,required,employee_id"`
	Compensation  *compensationRequest `json:"compensation" validate:"omitempty"`
}

type compensationRequest struct {
	Salary        *int64       `json:"salary" validate:"required,min=0"`
	EffectiveDate *domain.Date `json:"effectiveDate" validate:"required"`
}

// toDomain drops the body id; the service assigns or takes it from the path.
func (r employeeRequest) toDomain() domain.Employee {
	e := domain.Employee{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Position:      r.Position,
		Department:    r.Department,
		DirectReports: r.DirectReports,
	}

	if e.DirectReports == nil {
		e.DirectReports = []string{}
	}

	if r.Compensation != nil {
		c := r.Compensation.toDomain()
		e.Compensation = &c
	}

	return e
}

func (r compensationRequest) toDomain() domain.Compensation {
	var c domain.Compensation

	if r.Salary != nil {
		c.Salary = *r.Salary
	}

	if r.EffectiveDate != nil {
		c.EffectiveDate = *r.EffectiveDate
	}

	return c
}
