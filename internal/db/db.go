// Package db provides MongoDB document access for company and user data.
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	usersCollection     = "users"
	companiesCollection = "companies"
)

// DB wraps a MongoDB client and database handle
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes a connection to the database
func Connect(ctx context.Context, uri, databaseName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		client:   client,
		database: client.Database(databaseName),
	}, nil
}

// Close disconnects the underlying client
func (db *DB) Close(ctx context.Context) {
	if db.client != nil {
		_ = db.client.Disconnect(ctx)
	}
}

func (db *DB) users() *mongo.Collection {
	return db.database.Collection(usersCollection)
}

func (db *DB) companies() *mongo.Collection {
	return db.database.Collection(companiesCollection)
}
