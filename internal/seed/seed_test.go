package seed

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YusovID/employee-directory/internal/apperrors"
	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/reporting"
	"github.com/YusovID/employee-directory/internal/repository/memory"
	"github.com/YusovID/employee-directory/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLog = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_ShippedDatabase(t *testing.T) {
	ctx := context.Background()
	store := memory.NewEmployeeRepository(testLog)

	n, err := Load(ctx, "../../data/employee_database.json", store, testLog)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	john, err := store.GetByID(ctx, "16a596ae-edd3-4847-99fe-c4518e82c86f")
	require.NoError(t, err)
	assert.Equal(t, "Lennon", john.LastName)
	assert.Equal(t, []string{"b7839309-3348-463b-a7e3-5de1c168beb3", "03aa1462-ffa9-4978-901b-7c001562cf6f"}, john.DirectReports)
	require.NotNil(t, john.Compensation)
	assert.Equal(t, domain.Compensation{Salary: 120000, EffectiveDate: domain.NewDate(2023, time.January, 1)}, *john.Compensation)

	engine := reporting.NewEngine(store, testLog)

	structure, err := engine.Compute(ctx, john.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 4, structure.NumberOfReports)

	structure, err = engine.Compute(ctx, "03aa1462-ffa9-4978-901b-7c001562cf6f")
	require.NoError(t, err)
	assert.Equal(t, 2, structure.NumberOfReports)
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expectedCount int
		expectError   bool
	}{
		{
			name:          "Bare id references",
			content:       `[{"employeeId":"a","directReports":["b"]},{"employeeId":"b"}]`,
			expectedCount: 2,
		},
		{
			name:          "Empty array",
			content:       `[]`,
			expectedCount: 0,
		},
		{
			name:        "Missing id",
			content:     `[{"firstName":"Nobody"}]`,
			expectError: true,
		},
		{
			name:        "Bad reference",
			content:     `[{"employeeId":"a","directReports":[42]}]`,
			expectError: true,
		},
		{
			name:        "Not an array",
			content:     `{"employeeId":"a"}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewEmployeeRepository(testLog)

			n, err := Load(context.Background(), writeFile(t, tc.content), store, testLog)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedCount, n)
			}
		})
	}
}

func TestLoad_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewEmployeeRepository(testLog)
	path := writeFile(t, `[{"employeeId":"a","firstName":"Ann","directReports":[{"employeeId":"b"}]}]`)

	_, err := Load(ctx, path, store, testLog)
	require.NoError(t, err)
	_, err = Load(ctx, path, store, testLog)
	require.NoError(t, err)

	a, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, a.DirectReports)
}

type failingStore struct{}

func (failingStore) Upsert(context.Context, *domain.Employee) (*domain.Employee, error) {
	return nil, apperrors.StoreFailure("test", errors.New("down"))
}

func TestLoad_StoreFailure(t *testing.T) {
	_, err := Load(context.Background(), writeFile(t, `[{"employeeId":"a"}]`), failingStore{}, testLog)
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"), failingStore{}, testLog)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsUnaddressableIDs(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "Record id outside the id alphabet",
			content: `[{"employeeId":"a"},{"employeeId":"emp.1"}]`,
		},
		{
			name:    "Direct report outside the id alphabet",
			content: `[{"employeeId":"a","directReports":["b"]},{"employeeId":"b","directReports":[{"employeeId":"c d"}]}]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewEmployeeRepository(testLog)

			n, err := Load(ctx, writeFile(t, tc.content), store, testLog)

			var validationErr *validation.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, 0, n)

			_, err = store.GetByID(ctx, "a")
			assert.ErrorIs(t, err, apperrors.ErrNotFound, "no record is written when the file is rejected")
		})
	}
}
