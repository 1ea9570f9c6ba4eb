package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/YusovID/employee-directory/internal/config"
	"github.com/YusovID/employee-directory/internal/events"
	"github.com/YusovID/employee-directory/internal/reporting"
	"github.com/YusovID/employee-directory/internal/repository"
	"github.com/YusovID/employee-directory/internal/repository/memory"
	"github.com/YusovID/employee-directory/internal/repository/mongo"
	"github.com/YusovID/employee-directory/internal/repository/postgres"
	"github.com/YusovID/employee-directory/internal/seed"
	"github.com/YusovID/employee-directory/internal/service"
	myhttp "github.com/YusovID/employee-directory/internal/transport/http"
	"github.com/YusovID/employee-directory/pkg/logger/sl"
	"github.com/YusovID/employee-directory/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type employeeStore interface {
	repository.EmployeeRepository
	repository.Pinger
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting employee-directory",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init store: %w", err)
	}
	defer closeStore()

	if cfg.Seed.Path != "" {
		if _, err := seed.Load(ctx, cfg.Seed.Path, store, log); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	publisher, closePublisher := openPublisher(cfg.Kafka, log)
	defer closePublisher()

	engine := reporting.NewEngine(store, log)
	employees := service.NewEmployeeService(store, engine, publisher, log)

	srv := myhttp.NewServer(log, employees, store)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	log.Info("server stopped")

	return nil
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (employeeStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewDB(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Error("postgres close failed", sl.Err(err))
			}
		}

		return postgres.NewEmployeeRepository(db.DB(), log), closeFn, nil

	case config.DriverMongo:
		m, err := mongo.Connect(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if err := m.Close(context.Background()); err != nil {
				log.Error("mongo disconnect failed", sl.Err(err))
			}
		}

		repo := mongo.NewEmployeeRepository(m.Database(), cfg.Mongo.Collection, log)
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}

		return repo, closeFn, nil

	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")

		return memory.NewEmployeeRepository(log), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func openPublisher(cfg config.Kafka, log *slog.Logger) (events.Publisher, func()) {
	if !cfg.Enabled() {
		log.Info("kafka brokers not configured, lifecycle events disabled")
		return events.NoopPublisher{}, func() {}
	}

	writer := events.NewKafkaWriter(cfg.Brokers)
	log.Info("publishing lifecycle events", slog.String("topic", cfg.Topic), slog.Any("brokers", cfg.Brokers))

	closeFn := func() {
		if err := writer.Close(); err != nil {
			log.Error("kafka writer close failed", sl.Err(err))
		}
	}

	return events.NewKafkaPublisher(writer, cfg.Topic, log), closeFn
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
