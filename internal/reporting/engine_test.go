package reporting

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/YusovID/employee-directory/internal/apperrors"
	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/YusovID/employee-directory/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLog = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockResolver) GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

// countingResolver records every id passed to GetByIDs.
type countingResolver struct {
	EmployeeResolver

	mu        sync.Mutex
	requested map[string]int
	calls     int
}

func (c *countingResolver) GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	c.mu.Lock()
	c.calls++
	for _, id := range ids {
		c.requested[id]++
	}
	c.mu.Unlock()

	return c.EmployeeResolver.GetByIDs(ctx, ids)
}

func emp(id string, reports ...string) domain.Employee {
	return domain.Employee{EmployeeID: id, FirstName: id, DirectReports: reports}
}

func newStore(t *testing.T, employees ...domain.Employee) *memory.EmployeeRepository {
	t.Helper()

	store := memory.NewEmployeeRepository(testLog)
	for i := range employees {
		_, err := store.Upsert(context.Background(), &employees[i])
		require.NoError(t, err)
	}

	return store
}

func TestEngine_Compute(t *testing.T) {
	testCases := []struct {
		name      string
		employees []domain.Employee
		root      string
		expected  int
	}{
		{
			name:      "No direct reports",
			employees: []domain.Employee{emp("X")},
			root:      "X",
			expected:  0,
		},
		{
			name: "Two levels",
			employees: []domain.Employee{
				emp("X", "A", "B"),
				emp("A", "C"),
				emp("B"),
				emp("C"),
			},
			root:     "X",
			expected: 3,
		},
		{
			name: "Diamond is counted once",
			employees: []domain.Employee{
				emp("X", "A", "B"),
				emp("A", "D"),
				emp("B", "D"),
				emp("D"),
			},
			root:     "X",
			expected: 3,
		},
		{
			name: "Cycle back to root counts the root",
			employees: []domain.Employee{
				emp("Y", "A"),
				emp("A", "Y"),
			},
			root:     "Y",
			expected: 2,
		},
		{
			name: "Self report",
			employees: []domain.Employee{
				emp("S", "S"),
			},
			root:     "S",
			expected: 1,
		},
		{
			name: "Cycle below the root",
			employees: []domain.Employee{
				emp("X", "A"),
				emp("A", "B"),
				emp("B", "C"),
				emp("C", "A"),
			},
			root:     "X",
			expected: 3,
		},
		{
			name: "Dangling references are skipped",
			employees: []domain.Employee{
				emp("X", "A", "ghost"),
				emp("A", "phantom"),
			},
			root:     "X",
			expected: 1,
		},
		{
			name: "Duplicate references are counted once",
			employees: []domain.Employee{
				emp("X", "A", "A", "A"),
				emp("A"),
			},
			root:     "X",
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(newStore(t, tc.employees...), testLog)

			got, err := engine.Compute(context.Background(), tc.root)

			require.NoError(t, err)
			assert.Equal(t, tc.root, got.Employee.EmployeeID)
			assert.Equal(t, tc.expected, got.NumberOfReports)
		})
	}
}

func seedTree() []domain.Employee {
	return []domain.Employee{
		emp("16a596ae-edd3-4847-99fe-c4518e82c86f", "b7839309-3348-463b-a7e3-5de1c168beb3", "03aa1462-ffa9-4978-901b-7c001562cf6f"),
		emp("b7839309-3348-463b-a7e3-5de1c168beb3"),
		emp("03aa1462-ffa9-4978-901b-7c001562cf6f", "62c1084e-6e34-4630-93fd-9153afb65309", "c0c2293d-16bd-4603-8e08-638a9d18b22c"),
		emp("62c1084e-6e34-4630-93fd-9153afb65309"),
		emp("c0c2293d-16bd-4603-8e08-638a9d18b22c"),
	}
}

func TestEngine_Compute_SeedTree(t *testing.T) {
	engine := NewEngine(newStore(t, seedTree()...), testLog)
	ctx := context.Background()

	testCases := map[string]int{
		"16a596ae-edd3-4847-99fe-c4518e82c86f": 4,
		"03aa1462-ffa9-4978-901b-7c001562cf6f": 2,
		"b7839309-3348-463b-a7e3-5de1c168beb3": 0,
	}

	for id, expected := range testCases {
		got, err := engine.Compute(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, expected, got.NumberOfReports, id)
	}
}

func TestEngine_Compute_Idempotent(t *testing.T) {
	engine := NewEngine(newStore(t, seedTree()...), testLog)
	ctx := context.Background()

	first, err := engine.Compute(ctx, "16a596ae-edd3-4847-99fe-c4518e82c86f")
	require.NoError(t, err)

	second, err := engine.Compute(ctx, "16a596ae-edd3-4847-99fe-c4518e82c86f")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Compute_OrderIndependent(t *testing.T) {
	ctx := context.Background()

	forward := NewEngine(newStore(t,
		emp("X", "A", "B", "C"),
		emp("A", "D"),
		emp("B", "D", "E"),
		emp("C"), emp("D"), emp("E"),
	), testLog)

	reversed := NewEngine(newStore(t,
		emp("X", "C", "B", "A"),
		emp("A", "D"),
		emp("B", "E", "D"),
		emp("C"), emp("D"), emp("E"),
	), testLog)

	a, err := forward.Compute(ctx, "X")
	require.NoError(t, err)

	b, err := reversed.Compute(ctx, "X")
	require.NoError(t, err)

	assert.Equal(t, 5, a.NumberOfReports)
	assert.Equal(t, a.NumberOfReports, b.NumberOfReports)
}

func TestEngine_Compute_ResolvesEachIDOnce(t *testing.T) {
	store := &countingResolver{
		EmployeeResolver: newStore(t,
			emp("X", "A", "B", "ghost"),
			emp("A", "B", "C", "ghost"),
			emp("B", "A", "C", "X"),
			emp("C", "A", "ghost"),
		),
		requested: make(map[string]int),
	}

	got, err := NewEngine(store, testLog).Compute(context.Background(), "X")
	require.NoError(t, err)

	assert.Equal(t, 4, got.NumberOfReports)
	for id, n := range store.requested {
		assert.Equal(t, 1, n, "id %s requested more than once", id)
	}
	assert.Equal(t, 2, store.calls)
}

func TestEngine_Compute_RootNotFound(t *testing.T) {
	engine := NewEngine(newStore(t), testLog)

	_, err := engine.Compute(context.Background(), "absent")

	var idErr *apperrors.InvalidEmployeeIDError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "absent", idErr.ID)
}

func TestEngine_Compute_StoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := apperrors.StoreFailure("test", errors.New("connection reset"))

	testCases := []struct {
		name      string
		setupMock func(m *MockResolver)
	}{
		{
			name: "Root lookup fails",
			setupMock: func(m *MockResolver) {
				m.On("GetByID", ctx, "X").Return(nil, storeErr).Once()
			},
		},
		{
			name: "Batch lookup fails",
			setupMock: func(m *MockResolver) {
				root := emp("X", "A")
				m.On("GetByID", ctx, "X").Return(&root, nil).Once()
				m.On("GetByIDs", ctx, []string{"A"}).Return(nil, storeErr).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := new(MockResolver)
			tc.setupMock(m)

			got, err := NewEngine(m, testLog).Compute(ctx, "X")

			assert.Nil(t, got)
			assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
			m.AssertExpectations(t)
		})
	}
}

func TestEngine_Compute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	m := new(MockResolver)
	root := emp("X", "A")
	m.On("GetByID", ctx, "X").Run(func(mock.Arguments) { cancel() }).Return(&root, nil).Once()

	_, err := NewEngine(m, testLog).Compute(ctx, "X")

	assert.ErrorIs(t, err, context.Canceled)
	m.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
