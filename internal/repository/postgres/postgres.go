package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/employee-directory/internal/config"
	"github.com/YusovID/employee-directory/pkg/logger/sl"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Postgres struct {
	db  *sqlx.DB
	log *slog.Logger
}

// NewDB opens a pooled connection, retrying while the database is still starting up.
func NewDB(ctx context.Context, cfg config.Postgres, log *slog.Logger) (*Postgres, error) {
	const op = "internal.repository.postgres.NewDB"
	log = log.With(slog.String("op", op), slog.String("host", cfg.Host))

	attempts := max(cfg.ConnectRetries, 1)

	var lastErr error

	for i := 1; i <= attempts; i++ {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
		if err == nil {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
			db.SetMaxIdleConns(cfg.MaxIdleConns)
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
			db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

			log.Info("connected to postgres", slog.Int("attempt", i))

			return &Postgres{db: db, log: log}, nil
		}

		lastErr = err
		log.Warn("postgres connect failed", slog.Int("attempt", i), slog.Int("max_attempts", attempts), sl.Err(err))

		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("can't connect to database: %w", ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, fmt.Errorf("can't connect to database after %d attempts: %w", attempts, lastErr)
}

func (p *Postgres) DB() *sqlx.DB {
	return p.db
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
