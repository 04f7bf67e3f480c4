package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wavepoint/social-system/internal/core/domain"
)

const messagesCollection = "messages"

type MongoMessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{coll: db.Collection(messagesCollection)}
}

type mongoMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Sender    string             `bson:"sender"`
	Receiver  string             `bson:"receiver"`
	Content   string             `bson:"content"`
	IsRead    bool               `bson:"is_read"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoMessageRepository) Insert(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	doc := mongoMessage{
		Sender:    m.SenderID,
		Receiver:  m.ReceiverID,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoMessageRepository) FindConversation(ctx context.Context, a, b string) ([]*domain.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": a, "receiver": b},
		bson.M{"sender": b, "receiver": a},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return r.findMany(ctx, filter, opts)
}

func (r *MongoMessageRepository) FindFor(ctx context.Context, userID string) ([]*domain.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": userID},
		bson.M{"receiver": userID},
	}}
	return r.findMany(ctx, filter, options.Find())
}

func (r *MongoMessageRepository) DeleteFor(ctx context.Context, userID string) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": userID},
		bson.M{"receiver": userID},
	}}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	return nil
}

func (r *MongoMessageRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Message, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cur.Close(ctx)

	messages := []*domain.Message{}
	for cur.Next(ctx) {
		var mm mongoMessage
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, &domain.Message{
			ID:         mm.ID.Hex(),
			SenderID:   mm.Sender,
			ReceiverID: mm.Receiver,
			Content:    mm.Content,
			IsRead:     mm.IsRead,
			CreatedAt:  unixToTime(mm.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}
