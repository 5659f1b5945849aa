package data

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarhub/internal/errdefs"
)

// UpdateMode selects what happens when an update filter matches nothing.
type UpdateMode int

const (
	// UpdateExisting fails with ErrNotFound when no document matches.
	UpdateExisting UpdateMode = iota
	// Upsert inserts a new document carrying only the updated fields.
	Upsert
)

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func handleError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errdefs.ErrNotFound
	}
	// A unique-index violation can slip past a read-before-write check when
	// two registrations race; surface it as a conflict, not a store failure.
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", errdefs.ErrAlreadyExists, err)
	}
	return fmt.Errorf("%w: %v", errdefs.ErrUpstream, err)
}
