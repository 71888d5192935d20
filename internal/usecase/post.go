package usecase

import (
	"context"
	"time"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/cache"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type postUC struct {
	postRepo       domain.PostRepo
	snapshots      snapshotSource
	contextTimeout time.Duration
}

func NewPostUC(pr domain.PostRepo, ur domain.UserRepo, c *cache.Cache, timeout time.Duration) domain.PostUC {
	return postUC{
		postRepo:       pr,
		snapshots:      snapshotSource{userRepo: ur, cache: c},
		contextTimeout: timeout,
	}
}

func (pu postUC) Create(ctx context.Context, caller domain.Identity, text string) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	snap, err := pu.snapshots.get(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// token is valid but the account no longer exists
			return domain.Post{}, domain.ErrUnauthenticated
		}
		return domain.Post{}, err
	}

	post := domain.Post{
		Id:        primitive.NewObjectID(),
		User:      caller.UserID,
		Text:      text,
		Name:      snap.Name,
		Avatar:    snap.Avatar,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now(),
	}

	return pu.postRepo.Create(ctx, post)
}

func (pu postUC) GetAll(ctx context.Context) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.postRepo.GetAll(ctx)
}

func (pu postUC) GetById(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.postRepo.GetById(ctx, id)
}

func (pu postUC) Delete(ctx context.Context, id primitive.ObjectID, caller domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	post, err := pu.postRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(caller.UserID, post.User); err != nil {
		return err
	}
	return pu.postRepo.Delete(ctx, id)
}

func (pu postUC) Like(ctx context.Context, id primitive.ObjectID, caller domain.Identity) (domain.LikeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	added, err := pu.postRepo.AddLike(ctx, id, domain.Like{User: caller.UserID})
	if err != nil {
		return domain.LikeResult{}, err
	}

	// The read also tells a missing post apart from an already liked one
	// when the conditional push matched nothing.
	post, err := pu.postRepo.GetById(ctx, id)
	if err != nil {
		return domain.LikeResult{}, err
	}

	return domain.LikeResult{Likes: post.Likes, NoOp: !added}, nil
}

func (pu postUC) Unlike(ctx context.Context, id primitive.ObjectID, caller domain.Identity) (domain.LikeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	removed, err := pu.postRepo.RemoveLike(ctx, id, caller.UserID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	post, err := pu.postRepo.GetById(ctx, id)
	if err != nil {
		return domain.LikeResult{}, err
	}

	return domain.LikeResult{Likes: post.Likes, NoOp: !removed}, nil
}

func (pu postUC) Comment(ctx context.Context, id primitive.ObjectID, caller domain.Identity, text string) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	snap, err := pu.snapshots.get(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Post{}, domain.ErrUnauthenticated
		}
		return domain.Post{}, err
	}

	comment := domain.Comment{
		Id:        primitive.NewObjectID(),
		User:      caller.UserID,
		Text:      text,
		Name:      snap.Name,
		Avatar:    snap.Avatar,
		CreatedAt: time.Now(),
	}

	if err := pu.postRepo.AddComment(ctx, id, comment); err != nil {
		return domain.Post{}, err
	}

	return pu.postRepo.GetById(ctx, id)
}

func (pu postUC) DeleteComment(ctx context.Context, postId, commentId primitive.ObjectID, caller domain.Identity) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	post, err := pu.postRepo.GetById(ctx, postId)
	if err != nil {
		return nil, err
	}

	var comment *domain.Comment
	for i := range post.Comments {
		if post.Comments[i].Id == commentId {
			comment = &post.Comments[i]
			break
		}
	}
	if comment == nil {
		return nil, domain.ErrNotFound
	}

	// ownership is checked against the stored author, never request input
	if err := domain.Authorize(caller.UserID, comment.User); err != nil {
		return nil, err
	}

	if err := pu.postRepo.RemoveComment(ctx, postId, commentId); err != nil {
		return nil, err
	}

	updated, err := pu.postRepo.GetById(ctx, postId)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}
