package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes declares the indexes the domain invariants depend on.
// Idempotent: CreateOne on an existing identical index is a no-op.
//
//   - users.email unique with case-insensitive collation, so duplicate
//     registration differing only in case hits the index, not just the
//     pre-insert lookup.
//   - friendships.pair_key unique, making "at most one edge per unordered
//     pair" a store-level constraint that survives concurrent inserts.
//   - messages (sender, receiver, created_at) for conversation queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	opCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := db.Collection(usersCollection).Indexes().CreateOne(opCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return fmt.Errorf("ensure users email index: %w", err)
	}

	_, err = db.Collection(friendshipsCollection).Indexes().CreateOne(opCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pair_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure friendships pair index: %w", err)
	}

	_, err = db.Collection(messagesCollection).Indexes().CreateOne(opCtx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sender", Value: 1},
			{Key: "receiver", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("ensure messages conversation index: %w", err)
	}

	return nil
}
