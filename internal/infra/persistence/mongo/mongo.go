// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"planner/config"
	"planner/internal/domain/lifecycle"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Collection names.
const (
	collUsers       = "users"
	collCourses     = "courses"
	collAssignments = "assignments"
	collSchedules   = "schedules"
	collChat        = "chat_messages"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and registers connect/disconnect
// hooks. Server selection is bounded so repository calls cannot hang on an
// unreachable cluster.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration must be provided")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.OperationTimeout)

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure MongoDB indexes")
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Closing MongoDB connection")

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the repositories rely on. The unique
// email index is what turns a duplicate registration into a clean conflict
// instead of a second account.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	ownerScoped := []string{collCourses, collAssignments, collSchedules, collChat}
	for _, name := range ownerScoped {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create user_id index on %s", name)
		}
	}

	_, err = db.Collection(collAssignments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "due_date", Value: 1}},
	})

	return errors.Wrap(err, "failed to create due_date index")
}
