// Package mongo stores employees as documents, one per employee, keyed by employeeId.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/employee-directory/internal/config"
	"github.com/YusovID/employee-directory/pkg/logger/sl"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

// Connect dials the deployment and waits for a primary to answer a ping.
func Connect(ctx context.Context, cfg config.Mongo, log *slog.Logger) (*Mongo, error) {
	const op = "internal.repository.mongo.Connect"
	log = log.With(slog.String("op", op), slog.String("database", cfg.Database))

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: can't create mongo client: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			log.Error("failed to disconnect mongo client", sl.Err(dErr))
		}

		return nil, fmt.Errorf("%s: can't reach mongo: %w", op, err)
	}

	log.Info("connected to mongo")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		log:    log,
	}, nil
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return m.client.Disconnect(ctx)
}
