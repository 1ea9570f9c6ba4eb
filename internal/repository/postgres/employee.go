package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/employee-directory/internal/apperrors"
	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	employeesTable      = "employees"
	uniqueViolationCode = "23505"
)

var employeeColumns = []string{
	"employee_id",
	"first_name",
	"last_name",
	"position",
	"department",
	"direct_reports",
	"salary",
	"effective_date",
}

const returningEmployee = "RETURNING employee_id, first_name, last_name, position, department, direct_reports, salary, effective_date"

type EmployeeRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewEmployeeRepository(db *sqlx.DB, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// employeeRow is the employees table layout. Compensation is present iff salary is not null.
type employeeRow struct {
	EmployeeID    string         `db:"employee_id"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	Position      string         `db:"position"`
	Department    string         `db:"department"`
	DirectReports pq.StringArray `db:"direct_reports"`
	Salary        sql.NullInt64  `db:"salary"`
	EffectiveDate sql.NullTime   `db:"effective_date"`
}

func toRow(e *domain.Employee) employeeRow {
	reports := pq.StringArray(e.DirectReports)
	if reports == nil {
		reports = pq.StringArray{}
	}

	row := employeeRow{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Position:      e.Position,
		Department:    e.Department,
		DirectReports: reports,
	}

	if e.Compensation != nil {
		row.Salary = sql.NullInt64{Int64: e.Compensation.Salary, Valid: true}
		row.EffectiveDate = nullDate(e.Compensation.EffectiveDate)
	}

	return row
}

func (r employeeRow) toDomain() domain.Employee {
	e := domain.Employee{
		EmployeeID:    r.EmployeeID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Position:      r.Position,
		Department:    r.Department,
		DirectReports: []string(r.DirectReports),
	}

	if e.DirectReports == nil {
		e.DirectReports = []string{}
	}

	if r.Salary.Valid {
		e.Compensation = &domain.Compensation{
			Salary:        r.Salary.Int64,
			EffectiveDate: dateFromNull(r.EffectiveDate),
		}
	}

	return e
}

func nullDate(d domain.Date) sql.NullTime {
	if d.IsZero() {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: d.Time, Valid: true}
}

func dateFromNull(t sql.NullTime) domain.Date {
	if !t.Valid {
		return domain.Date{}
	}

	return domain.DateOf(t.Time)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const op = "internal.repository.postgres.GetByID"

	query, args, err := r.sq.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"employee_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select employee query: %w", op, err)
	}

	var row employeeRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.InvalidEmployeeIDError{ID: id}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	e := row.toDomain()

	return &e, nil
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	const op = "internal.repository.postgres.GetByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := r.sq.Select(employeeColumns...).
		From(employeesTable).
		Where("employee_id = ANY(?)", pq.Array(ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select employees query: %w", op, err)
	}

	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.StoreFailure(op, err)
	}

	employees := make([]domain.Employee, len(rows))
	for i, row := range rows {
		employees[i] = row.toDomain()
	}

	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.postgres.Create"
	log := r.log.With(slog.String("op", op), slog.String("employee_id", e.EmployeeID))

	row := toRow(e)

	query, args, err := r.sq.Insert(employeesTable).
		Columns(employeeColumns...).
		Values(row.values()...).
		Suffix(returningEmployee).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build employee insert query: %w", op, err)
	}

	var created employeeRow
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&created); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, &apperrors.EmployeeAlreadyExistsError{ID: e.EmployeeID}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	log.Debug("employee inserted")

	out := created.toDomain()

	return &out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.postgres.Update"

	row := toRow(e)

	query, args, err := r.sq.Update(employeesTable).
		Set("first_name", row.FirstName).
		Set("last_name", row.LastName).
		Set("position", row.Position).
		Set("department", row.Department).
		Set("direct_reports", row.DirectReports).
		Set("salary", row.Salary).
		Set("effective_date", row.EffectiveDate).
		Where(sq.Eq{"employee_id": e.EmployeeID}).
		Suffix(returningEmployee).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build employee update query: %w", op, err)
	}

	var updated employeeRow
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.InvalidEmployeeIDError{ID: e.EmployeeID}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	out := updated.toDomain()

	return &out, nil
}

func (r *EmployeeRepository) Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.postgres.Upsert"

	row := toRow(e)

	query, args, err := r.sq.Insert(employeesTable).
		Columns(employeeColumns...).
		Values(row.values()...).
		Suffix(`ON CONFLICT (employee_id) DO UPDATE SET
            first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            position = EXCLUDED.position,
            department = EXCLUDED.department,
            direct_reports = EXCLUDED.direct_reports,
            salary = EXCLUDED.salary,
            effective_date = EXCLUDED.effective_date
        ` + returningEmployee).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build employee upsert query: %w", op, err)
	}

	var stored employeeRow
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&stored); err != nil {
		return nil, apperrors.StoreFailure(op, err)
	}

	out := stored.toDomain()

	return &out, nil
}

func (r *EmployeeRepository) UpdateCompensation(ctx context.Context, id string, c domain.Compensation) (*domain.Compensation, error) {
	const op = "internal.repository.postgres.UpdateCompensation"

	query, args, err := r.sq.Update(employeesTable).
		Set("salary", c.Salary).
		Set("effective_date", nullDate(c.EffectiveDate)).
		Where(sq.Eq{"employee_id": id}).
		Suffix("RETURNING salary, effective_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build compensation update query: %w", op, err)
	}

	var stored struct {
		Salary        sql.NullInt64 `db:"salary"`
		EffectiveDate sql.NullTime  `db:"effective_date"`
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.InvalidEmployeeIDError{ID: id}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	return &domain.Compensation{
		Salary:        stored.Salary.Int64,
		EffectiveDate: dateFromNull(stored.EffectiveDate),
	}, nil
}

func (r *EmployeeRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return apperrors.StoreFailure("internal.repository.postgres.Ping", err)
	}

	return nil
}

func (r employeeRow) values() []interface{} {
	return []interface{}{
		r.EmployeeID,
		r.FirstName,
		r.LastName,
		r.Position,
		r.Department,
		r.DirectReports,
		r.Salary,
		r.EffectiveDate,
	}
}
