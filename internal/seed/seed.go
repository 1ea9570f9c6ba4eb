// Package seed loads an initial set of employees from a JSON file into the store.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/validation"
)

// Upserter is the part of the employee store the loader writes through.
type Upserter interface {
	Upsert(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
}

// reportRef accepts a direct report written either as a bare id
// or as an object carrying an employeeId field.
type reportRef string

func (r *reportRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = reportRef(id)

		return nil
	}

	var obj struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("direct report must be an id or an object with employeeId: %w", err)
	}
	*r = reportRef(obj.EmployeeID)

	return nil
}

type seedEmployee struct {
	EmployeeID    string               `json:"employeeId"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Position      string               `json:"position"`
	Department    string               `json:"department"`
	DirectReports []reportRef          `json:"directReports"`
	Compensation  *domain.Compensation `json:"compensation"`
}

func (s seedEmployee) toDomain() domain.Employee {
	reports := make([]string, 0, len(s.DirectReports))
	for _, r := range s.DirectReports {
		if r != "" {
			reports = append(reports, string(r))
		}
	}

	return domain.Employee{
		EmployeeID:    s.EmployeeID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Position:      s.Position,
		Department:    s.Department,
		DirectReports: reports,
		Compensation:  s.Compensation,
	}
}

// validate rejects ids the HTTP surface would refuse, so every seeded
// employee stays addressable.
func (s seedEmployee) validate() error {
	if s.EmployeeID == "" {
		return errors.New("no employeeId")
	}

	if err := validation.ValidateID(s.EmployeeID); err != nil {
		return err
	}

	for _, r := range s.DirectReports {
		if r == "" {
			continue
		}

		if err := validation.ValidateID(string(r)); err != nil {
			return fmt.Errorf("direct report: %w", err)
		}
	}

	return nil
}

// Load reads the employee array at path and upserts every record, keeping its id.
// The whole file is rejected before any write when a record carries an invalid id.
// It returns the number of records written.
func Load(ctx context.Context, path string, store Upserter, log *slog.Logger) (int, error) {
	const op = "internal.seed.Load"

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read seed file: %w", op, err)
	}

	var records []seedEmployee
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, fmt.Errorf("%s: failed to decode seed file: %w", op, err)
	}

	for i, rec := range records {
		if err := rec.validate(); err != nil {
			return 0, fmt.Errorf("%s: record %d: %w", op, i, err)
		}
	}

	for i, rec := range records {
		e := rec.toDomain()
		if _, err := store.Upsert(ctx, &e); err != nil {
			return i, fmt.Errorf("%s: failed to upsert '%s': %w", op, rec.EmployeeID, err)
		}
	}

	log.Info("seed data loaded", slog.String("op", op), slog.String("path", path), slog.Int("employees", len(records)))

	return len(records), nil
}
