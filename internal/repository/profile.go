package repository

import (
	"context"
	"time"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepo struct {
	Db         *mongo.Database
	Collection *mongo.Collection
}

func NewProfileRepo(db *mongo.Database, collectionName string) domain.ProfileRepo {
	collection := db.Collection(collectionName)
	repo := &ProfileRepo{
		Db:         db,
		Collection: collection,
	}
	if err := repo.RegisterProfileIndexes(context.TODO()); err != nil {
		logrus.Error("Unable to register profile indexes")
		logrus.Error(err)
	}
	return repo
}

// RegisterProfileIndexes creates a unique index on the user field; a user
// owns at most one profile.
func (pr *ProfileRepo) RegisterProfileIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := pr.Collection.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (pr *ProfileRepo) GetByUser(ctx context.Context, userId primitive.ObjectID) (domain.Profile, error) {
	var profile domain.Profile
	err := pr.Collection.FindOne(ctx, bson.M{"user": userId}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile, domain.ErrNotFound
		}
		return profile, errors.Wrap(err, "unable to find profile")
	}
	return profile, nil
}

func (pr *ProfileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	cursor, err := pr.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to find profiles")
	}
	defer cursor.Close(ctx)

	profiles := []domain.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "unable to unpack profiles")
	}
	return profiles, nil
}

func (pr *ProfileRepo) Upsert(ctx context.Context, userId primitive.ObjectID, fields domain.ProfileFields) (domain.Profile, error) {
	now := time.Now()

	set := bson.M{
		"company":        fields.Company,
		"website":        fields.Website,
		"location":       fields.Location,
		"status":         fields.Status,
		"bio":            fields.Bio,
		"githubusername": fields.GithubUsername,
		"skills":         fields.Skills,
		"social":         fields.Social,
		"updatedAt":      now,
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"user":       userId,
			"experience": []domain.Experience{},
			"createdAt":  now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var profile domain.Profile
	err := pr.Collection.FindOneAndUpdate(ctx, bson.M{"user": userId}, update, opts).Decode(&profile)
	if err != nil {
		return profile, errors.Wrap(err, "unable to upsert profile")
	}
	return profile, nil
}

func (pr *ProfileRepo) AddExperience(ctx context.Context, userId primitive.ObjectID, exp domain.Experience) (domain.Profile, error) {
	filter := bson.M{"user": userId}
	update := bson.M{
		"$push": bson.M{"experience": bson.M{"$each": []domain.Experience{exp}, "$position": 0}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile domain.Profile
	err := pr.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile, domain.ErrNotFound
		}
		return profile, errors.Wrap(err, "unable to add experience")
	}
	return profile, nil
}

// RemoveExperience pulls by the entry's own id. The filter also matches on
// the id so a missing entry surfaces as ErrNotFound instead of a silent
// no-op write.
func (pr *ProfileRepo) RemoveExperience(ctx context.Context, userId, expId primitive.ObjectID) (domain.Profile, error) {
	filter := bson.M{"user": userId, "experience._id": expId}
	update := bson.M{
		"$pull": bson.M{"experience": bson.M{"_id": expId}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile domain.Profile
	err := pr.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile, domain.ErrNotFound
		}
		return profile, errors.Wrap(err, "unable to remove experience")
	}
	return profile, nil
}

func (pr *ProfileRepo) DeleteByUser(ctx context.Context, userId primitive.ObjectID) error {
	_, err := pr.Collection.DeleteOne(ctx, bson.M{"user": userId})
	if err != nil {
		return errors.Wrap(err, "unable to delete profile")
	}
	return nil
}
