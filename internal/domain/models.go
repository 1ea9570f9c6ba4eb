package domain

// Employee is a directory record. DirectReports holds employee ids, not embedded
// employees; an id there is not required to resolve to a stored record.
type Employee struct {
	EmployeeID    string        `json:"employeeId"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Position      string        `json:"position"`
	Department    string        `json:"department"`
	DirectReports []string      `json:"directReports"`
	Compensation  *Compensation `json:"compensation,omitempty"`
}

// Compensation is replaced wholesale on update; no history is kept.
type Compensation struct {
	Salary        int64 `json:"salary"`
	EffectiveDate Date  `json:"effectiveDate"`
}

// ReportingStructure is derived on every request and never stored.
type ReportingStructure struct {
	Employee        Employee `json:"employee"`
	NumberOfReports int      `json:"numberOfReports"`
}

// Clone returns a deep copy so callers cannot mutate a stored record through shared slices.
func (e Employee) Clone() Employee {
	out := e

	if e.DirectReports != nil {
		out.DirectReports = make([]string, len(e.DirectReports))
		copy(out.DirectReports, e.DirectReports)
	}

	if e.Compensation != nil {
		c := *e.Compensation
		out.Compensation = &c
	}

	return out
}
