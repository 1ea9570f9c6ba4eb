// Package reporting derives the reporting structure of an employee: the number of
// distinct employees reachable through directReports edges, computed on every request.
package reporting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/employee-directory/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	traversalLevels = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reporting_traversal_levels",
		Help:    "Number of breadth-first levels walked per reporting structure computation",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
	})

	storeRoundTrips = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reporting_store_round_trips",
		Help:    "Number of store calls issued per reporting structure computation",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
	})

	danglingReferences = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reporting_dangling_references_total",
		Help: "Total number of directReports ids that did not resolve to a stored employee",
	})
)

// EmployeeResolver is the read side of the employee store the engine needs.
type EmployeeResolver interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error)
}

// Engine computes reporting structures over an EmployeeResolver.
type Engine struct {
	store EmployeeResolver
	log   *slog.Logger
}

// NewEngine creates an Engine reading employees from store.
func NewEngine(store EmployeeResolver, log *slog.Logger) *Engine {
	return &Engine{
		store: store,
		log:   log,
	}
}

type traversalStats struct {
	levels     int
	roundTrips int
	dangling   int
}

// Compute returns the employee stored under rootID together with the number of distinct
// employees reachable from it. Dangling ids are skipped. The root itself is only counted
// when a cycle leads back to it. Store errors are returned unchanged.
func (e *Engine) Compute(ctx context.Context, rootID string) (*domain.ReportingStructure, error) {
	const op = "internal.reporting.Compute"
	log := e.log.With(slog.String("op", op), slog.String("employee_id", rootID))

	root, err := e.store.GetByID(ctx, rootID)
	if err != nil {
		return nil, err
	}

	count, stats, err := e.countReports(ctx, root.DirectReports)

	traversalLevels.Observe(float64(stats.levels))
	storeRoundTrips.Observe(float64(stats.roundTrips))
	danglingReferences.Add(float64(stats.dangling))

	if err != nil {
		return nil, err
	}

	log.Debug("reporting structure computed",
		slog.Int("number_of_reports", count),
		slog.Int("levels", stats.levels),
		slog.Int("round_trips", stats.roundTrips),
		slog.Int("dangling", stats.dangling),
	)

	return &domain.ReportingStructure{
		Employee:        *root,
		NumberOfReports: count,
	}, nil
}

func (e *Engine) countReports(ctx context.Context, frontier []string) (int, traversalStats, error) {
	const op = "internal.reporting.countReports"

	stats := traversalStats{roundTrips: 1}
	requested := make(map[string]struct{})
	visited := make(map[string]struct{})

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return 0, stats, fmt.Errorf("%s: traversal interrupted: %w", op, err)
		}

		batch := make([]string, 0, len(frontier))
		for _, id := range frontier {
			if _, ok := requested[id]; ok {
				continue
			}
			requested[id] = struct{}{}
			batch = append(batch, id)
		}

		if len(batch) == 0 {
			break
		}

		stats.levels++
		stats.roundTrips++

		resolved, err := e.store.GetByIDs(ctx, batch)
		if err != nil {
			return 0, stats, err
		}

		stats.dangling += len(batch) - len(resolved)

		var next []string
		for _, emp := range resolved {
			if _, ok := visited[emp.EmployeeID]; ok {
				continue
			}
			visited[emp.EmployeeID] = struct{}{}
			next = append(next, emp.DirectReports...)
		}

		frontier = next
	}

	return len(visited), stats, nil
}
