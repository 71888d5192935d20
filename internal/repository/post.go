package repository

import (
	"context"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidInsertedIDType = errors.New("invalid InsertedID type")

type PostRepo struct {
	Db         *mongo.Database
	Collection *mongo.Collection
}

func NewPostRepo(db *mongo.Database, collectionName string) domain.PostRepo {
	collection := db.Collection(collectionName)
	repo := &PostRepo{
		Db:         db,
		Collection: collection,
	}
	if err := repo.RegisterPostIndexes(context.TODO()); err != nil {
		logrus.Error("Unable to register post indexes")
		logrus.Error(err)
	}
	return repo
}

func (pr *PostRepo) RegisterPostIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("author_index"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_index"),
		},
	}

	_, err := pr.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (pr *PostRepo) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	doc, err := pr.Collection.InsertOne(ctx, post)
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "unable to insert post")
	}

	insertedID, ok := doc.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Post{}, ErrInvalidInsertedIDType
	}

	var inserted domain.Post
	err = pr.Collection.FindOne(ctx, bson.M{"_id": insertedID}).Decode(&inserted)
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "unable to read back inserted post")
	}

	return inserted, nil
}

func (pr *PostRepo) GetById(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	var post domain.Post
	err := pr.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return post, domain.ErrNotFound
		}
		return post, errors.Wrap(err, "unable to find post")
	}
	return post, nil
}

func (pr *PostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := pr.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to find posts")
	}
	defer cursor.Close(ctx)

	posts := []domain.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "unable to unpack posts")
	}
	return posts, nil
}

func (pr *PostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := pr.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete post")
	}
	if res.DeletedCount < 1 {
		return domain.ErrNotFound
	}
	return nil
}

// AddLike prepends the like only when the user has none on the post yet.
// The add-if-absent filter makes concurrent likes from the same user collapse
// into a single entry without a read-modify-write cycle.
func (pr *PostRepo) AddLike(ctx context.Context, postId primitive.ObjectID, like domain.Like) (bool, error) {
	filter := bson.M{"_id": postId, "likes.user": bson.M{"$ne": like.User}}
	update := bson.M{"$push": bson.M{"likes": bson.M{"$each": []domain.Like{like}, "$position": 0}}}

	res, err := pr.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, errors.Wrap(err, "unable to add like")
	}
	return res.MatchedCount > 0, nil
}

func (pr *PostRepo) RemoveLike(ctx context.Context, postId, userId primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": postId}
	update := bson.M{"$pull": bson.M{"likes": bson.M{"user": userId}}}

	res, err := pr.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, errors.Wrap(err, "unable to remove like")
	}
	if res.MatchedCount < 1 {
		return false, domain.ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (pr *PostRepo) AddComment(ctx context.Context, postId primitive.ObjectID, comment domain.Comment) error {
	filter := bson.M{"_id": postId}
	update := bson.M{"$push": bson.M{"comments": bson.M{"$each": []domain.Comment{comment}, "$position": 0}}}

	res, err := pr.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrap(err, "unable to add comment")
	}
	if res.MatchedCount < 1 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveComment pulls by the comment's own id, never by a scan over another
// field, so a post holding several comments from one user loses exactly the
// addressed one.
func (pr *PostRepo) RemoveComment(ctx context.Context, postId, commentId primitive.ObjectID) error {
	filter := bson.M{"_id": postId}
	update := bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentId}}}

	res, err := pr.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrap(err, "unable to remove comment")
	}
	if res.MatchedCount < 1 || res.ModifiedCount < 1 {
		return domain.ErrNotFound
	}
	return nil
}
