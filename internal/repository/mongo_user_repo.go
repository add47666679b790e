package repository

import (
	"context"
	"fmt"
	"greenify/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoUserRepo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoUserRepo stores users in the "users" collection of db and ensures a unique email index.
func NewMongoUserRepo(ctx context.Context, client *mongo.Client, db string) (UserRepo, error) {
	coll := client.Database(db).Collection("users")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return nil, fmt.Errorf("create email index: %w", err)
	}
	return &mongoUserRepo{client: client, collection: coll}, nil
}

func (r *mongoUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, nil)
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	// Same collation as the unique index so lookups ignore case.
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})
	return r.findOne(ctx, bson.M{"email": email}, opts)
}

func (r *mongoUserRepo) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*model.User, error) {
	var user model.User
	var err error
	if opts != nil {
		err = r.collection.FindOne(ctx, filter, opts).Decode(&user)
	} else {
		err = r.collection.FindOne(ctx, filter).Decode(&user)
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
