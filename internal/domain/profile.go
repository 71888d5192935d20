package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionProfile = "profiles"
)

type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
}

type Experience struct {
	Id          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        time.Time          `bson:"from" json:"from"`
	To          *time.Time         `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ProfileFields is the validated upsert payload. It never carries the owner;
// the owner is always the caller identity.
type ProfileFields struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Bio            string
	GithubUsername string
	Skills         []string
	Social         Social
}

type Profile struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Status         string             `bson:"status" json:"status"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Skills         []string           `bson:"skills" json:"skills"`
	Social         Social             `bson:"social,omitempty" json:"social,omitempty"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ProfileRepo interface {
	GetByUser(ctx context.Context, userId primitive.ObjectID) (Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	// Upsert creates the profile on first write and updates it afterwards,
	// always keyed by the owning user. Returns the document after the write.
	Upsert(ctx context.Context, userId primitive.ObjectID, fields ProfileFields) (Profile, error)
	AddExperience(ctx context.Context, userId primitive.ObjectID, exp Experience) (Profile, error)
	RemoveExperience(ctx context.Context, userId, expId primitive.ObjectID) (Profile, error)
	// DeleteByUser is idempotent; deleting an absent profile is not an error.
	DeleteByUser(ctx context.Context, userId primitive.ObjectID) error
}

type ProfileUC interface {
	GetMine(ctx context.Context, caller Identity) (Profile, error)
	GetByUser(ctx context.Context, userId primitive.ObjectID) (Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	Upsert(ctx context.Context, caller Identity, fields ProfileFields) (Profile, error)
	AddExperience(ctx context.Context, caller Identity, exp Experience) (Profile, error)
	RemoveExperience(ctx context.Context, caller Identity, expId primitive.ObjectID) (Profile, error)
	DeleteAccount(ctx context.Context, caller Identity) error
}
