package repository

import (
	"context"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	Db         *mongo.Database
	Collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database, collectionName string) domain.UserRepo {
	return &UserRepo{
		Db:         db,
		Collection: db.Collection(collectionName),
	}
}

func (ur *UserRepo) GetById(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	var user domain.User
	err := ur.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, domain.ErrNotFound
		}
		return user, errors.Wrap(err, "unable to find user")
	}
	return user, nil
}

// Delete is idempotent; removing an already removed user is not an error.
func (ur *UserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := ur.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete user")
	}
	return nil
}
