package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wavepoint/social-system/internal/core/domain"
)

const friendshipsCollection = "friendships"

type MongoFriendshipRepository struct {
	coll *mongo.Collection
}

func NewFriendshipRepository(db *mongo.Database) *MongoFriendshipRepository {
	return &MongoFriendshipRepository{coll: db.Collection(friendshipsCollection)}
}

type mongoFriendship struct {
	ID        primitive.ObjectID      `bson:"_id,omitempty"`
	Requester string                  `bson:"requester"`
	Recipient string                  `bson:"recipient"`
	PairKey   string                  `bson:"pair_key"`
	Status    domain.FriendshipStatus `bson:"status"`
	CreatedAt int64                   `bson:"created_at"`
	UpdatedAt int64                   `bson:"updated_at"`
}

// Insert stores a new edge. The unique pair_key index rejects a second
// edge for the same unordered pair whichever direction it is written in,
// which also closes the concurrent check-then-insert race.
func (r *MongoFriendshipRepository) Insert(ctx context.Context, f *domain.Friendship) (*domain.Friendship, error) {
	doc := mongoFriendship{
		Requester: f.RequesterID,
		Recipient: f.RecipientID,
		PairKey:   domain.PairKey(f.RequesterID, f.RecipientID),
		Status:    f.Status,
		CreatedAt: f.CreatedAt.Unix(),
		UpdatedAt: f.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFriendshipExists
		}
		return nil, fmt.Errorf("insert friendship: %w", err)
	}

	created := *f
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// UpdatePendingStatus transitions the exact (requester, recipient, pending)
// triple in a single findOneAndUpdate, so the match and the write cannot
// interleave with a concurrent accept.
func (r *MongoFriendshipRepository) UpdatePendingStatus(ctx context.Context, requesterID, recipientID string, status domain.FriendshipStatus) (*domain.Friendship, error) {
	filter := bson.M{
		"requester": requesterID,
		"recipient": recipientID,
		"status":    domain.FriendshipPending,
	}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": nowUnix(),
	}}

	var mf mongoFriendship
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFriendRequestNotFound
		}
		return nil, fmt.Errorf("update friendship status: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *MongoFriendshipRepository) FindAcceptedBetween(ctx context.Context, a, b string) (*domain.Friendship, error) {
	filter := bson.M{
		"pair_key": domain.PairKey(a, b),
		"status":   domain.FriendshipAccepted,
	}

	var mf mongoFriendship
	if err := r.coll.FindOne(ctx, filter).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFriendRequestNotFound
		}
		return nil, fmt.Errorf("find accepted friendship: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *MongoFriendshipRepository) FindPendingForRecipient(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	return r.findMany(ctx, bson.M{
		"recipient": userID,
		"status":    domain.FriendshipPending,
	})
}

func (r *MongoFriendshipRepository) FindAcceptedFor(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	return r.findMany(ctx, bson.M{
		"$or": bson.A{
			bson.M{"requester": userID},
			bson.M{"recipient": userID},
		},
		"status": domain.FriendshipAccepted,
	})
}

func (r *MongoFriendshipRepository) DeleteFor(ctx context.Context, userID string) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"requester": userID},
		bson.M{"recipient": userID},
	}}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("delete friendships: %w", err)
	}
	return nil
}

func (r *MongoFriendshipRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Friendship, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find friendships: %w", err)
	}
	defer cur.Close(ctx)

	edges := []*domain.Friendship{}
	for cur.Next(ctx) {
		var mf mongoFriendship
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode friendship: %w", err)
		}
		edges = append(edges, mf.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate friendships: %w", err)
	}
	return edges, nil
}

func nowUnix() int64 {
	return time.Now().UTC().Unix()
}

func (mf *mongoFriendship) toDomain() *domain.Friendship {
	return &domain.Friendship{
		ID:          mf.ID.Hex(),
		RequesterID: mf.Requester,
		RecipientID: mf.Recipient,
		Status:      mf.Status,
		CreatedAt:   unixToTime(mf.CreatedAt),
		UpdatedAt:   unixToTime(mf.UpdatedAt),
	}
}
