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

const postsCollection = "posts"

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Author    string             `bson:"author"`
	Text      string             `bson:"text,omitempty"`
	Media     []string           `bson:"media,omitempty"`
	Tags      []string           `bson:"tags,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoPostRepository) Insert(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	doc := mongoPost{
		Author:    p.AuthorID,
		Text:      p.Text,
		Media:     p.Media,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(ctx, bson.M{}, opts)
}

func (r *MongoPostRepository) FindByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return r.findMany(ctx, bson.M{"author": authorID}, options.Find())
}

func (r *MongoPostRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"author": authorID}); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Post, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (mp *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        mp.ID.Hex(),
		AuthorID:  mp.Author,
		Text:      mp.Text,
		Media:     mp.Media,
		Tags:      mp.Tags,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}
