package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionUser = "users"
)

// User accounts are created by the auth server; this service only reads them
// and deletes them on account removal.
type User struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type UserRepo interface {
	GetById(ctx context.Context, id primitive.ObjectID) (User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
