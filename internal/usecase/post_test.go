package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
)

func newTestUser(name string) domain.User {
	return domain.User{
		Id:     primitive.NewObjectID(),
		Name:   name,
		Email:  name + "@example.com",
		Avatar: "//gravatar/" + name,
	}
}

func TestPostCreateStampsAuthorSnapshot(t *testing.T) {
	author := newTestUser("alice")
	postRepo := newFakePostRepo()
	uc := NewPostUC(postRepo, newFakeUserRepo(author), nil, 2*time.Second)

	post, err := uc.Create(context.Background(), domain.Identity{UserID: author.Id}, "hello world")
	require.NoError(t, err)

	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, author.Id, post.User)
	assert.Equal(t, author.Name, post.Name)
	assert.Equal(t, author.Avatar, post.Avatar)
	assert.NotEmpty(t, post.Id)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostCreateUnknownCaller(t *testing.T) {
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(), nil, 2*time.Second)

	_, err := uc.Create(context.Background(), domain.Identity{UserID: primitive.NewObjectID()}, "orphaned")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestPostGetAllNewestFirst(t *testing.T) {
	author := newTestUser("bob")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)
	caller := domain.Identity{UserID: author.Id}

	first, err := uc.Create(context.Background(), caller, "first")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := uc.Create(context.Background(), caller, "second")
	require.NoError(t, err)

	posts, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.Id, posts[0].Id)
	assert.Equal(t, first.Id, posts[1].Id)
}

func TestPostDeleteRequiresOwnership(t *testing.T) {
	author := newTestUser("carol")
	stranger := newTestUser("dave")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author, stranger), nil, 2*time.Second)

	post, err := uc.Create(context.Background(), domain.Identity{UserID: author.Id}, "mine")
	require.NoError(t, err)

	err = uc.Delete(context.Background(), post.Id, domain.Identity{UserID: stranger.Id})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// still there
	_, err = uc.GetById(context.Background(), post.Id)
	require.NoError(t, err)

	err = uc.Delete(context.Background(), post.Id, domain.Identity{UserID: author.Id})
	require.NoError(t, err)

	_, err = uc.GetById(context.Background(), post.Id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostDeleteMissing(t *testing.T) {
	author := newTestUser("erin")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)

	err := uc.Delete(context.Background(), primitive.NewObjectID(), domain.Identity{UserID: author.Id})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostLikeIsIdempotent(t *testing.T) {
	author := newTestUser("frank")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)
	caller := domain.Identity{UserID: author.Id}

	post, err := uc.Create(context.Background(), caller, "likeable")
	require.NoError(t, err)

	res, err := uc.Like(context.Background(), post.Id, caller)
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	require.Len(t, res.Likes, 1)
	assert.Equal(t, author.Id, res.Likes[0].User)

	res, err = uc.Like(context.Background(), post.Id, caller)
	require.NoError(t, err)
	assert.True(t, res.NoOp)
	assert.Len(t, res.Likes, 1)
}

func TestPostLikeMissingPost(t *testing.T) {
	author := newTestUser("grace")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)

	_, err := uc.Like(context.Background(), primitive.NewObjectID(), domain.Identity{UserID: author.Id})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostUnlike(t *testing.T) {
	author := newTestUser("heidi")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)
	caller := domain.Identity{UserID: author.Id}

	post, err := uc.Create(context.Background(), caller, "fickle")
	require.NoError(t, err)

	// unliking before liking is a no-op, not an error
	res, err := uc.Unlike(context.Background(), post.Id, caller)
	require.NoError(t, err)
	assert.True(t, res.NoOp)
	assert.Empty(t, res.Likes)

	_, err = uc.Like(context.Background(), post.Id, caller)
	require.NoError(t, err)

	res, err = uc.Unlike(context.Background(), post.Id, caller)
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	assert.Empty(t, res.Likes)
}

func TestPostConcurrentDistinctLikers(t *testing.T) {
	author := newTestUser("ivan")
	users := []domain.User{author}
	for i := 0; i < 24; i++ {
		users = append(users, newTestUser("liker"))
	}
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(users...), nil, 2*time.Second)

	post, err := uc.Create(context.Background(), domain.Identity{UserID: author.Id}, "popular")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(id primitive.ObjectID) {
			defer wg.Done()
			_, err := uc.Like(context.Background(), post.Id, domain.Identity{UserID: id})
			assert.NoError(t, err)
		}(u.Id)
	}
	wg.Wait()

	got, err := uc.GetById(context.Background(), post.Id)
	require.NoError(t, err)
	require.Len(t, got.Likes, len(users))

	seen := make(map[primitive.ObjectID]bool)
	for _, l := range got.Likes {
		assert.False(t, seen[l.User], "duplicate like for %s", l.User.Hex())
		seen[l.User] = true
	}
}

func TestPostCommentPrependsNewest(t *testing.T) {
	author := newTestUser("judy")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)
	caller := domain.Identity{UserID: author.Id}

	post, err := uc.Create(context.Background(), caller, "discussed")
	require.NoError(t, err)

	_, err = uc.Comment(context.Background(), post.Id, caller, "first comment")
	require.NoError(t, err)
	updated, err := uc.Comment(context.Background(), post.Id, caller, "second comment")
	require.NoError(t, err)

	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "second comment", updated.Comments[0].Text)
	assert.Equal(t, "first comment", updated.Comments[1].Text)
	assert.Equal(t, author.Name, updated.Comments[0].Name)
	assert.NotEqual(t, updated.Comments[0].Id, updated.Comments[1].Id)
}

func TestPostCommentMissingPost(t *testing.T) {
	author := newTestUser("kate")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)

	_, err := uc.Comment(context.Background(), primitive.NewObjectID(), domain.Identity{UserID: author.Id}, "void")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostDeleteCommentById(t *testing.T) {
	author := newTestUser("leo")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)
	caller := domain.Identity{UserID: author.Id}

	post, err := uc.Create(context.Background(), caller, "noisy")
	require.NoError(t, err)

	// two comments from the same author; only the targeted one may go
	_, err = uc.Comment(context.Background(), post.Id, caller, "keep me")
	require.NoError(t, err)
	updated, err := uc.Comment(context.Background(), post.Id, caller, "delete me")
	require.NoError(t, err)
	target := updated.Comments[0]
	require.Equal(t, "delete me", target.Text)

	remaining, err := uc.DeleteComment(context.Background(), post.Id, target.Id, caller)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep me", remaining[0].Text)
}

func TestPostDeleteCommentRequiresCommentOwnership(t *testing.T) {
	postOwner := newTestUser("mallory")
	commenter := newTestUser("nancy")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(postOwner, commenter), nil, 2*time.Second)

	post, err := uc.Create(context.Background(), domain.Identity{UserID: postOwner.Id}, "host")
	require.NoError(t, err)

	updated, err := uc.Comment(context.Background(), post.Id, domain.Identity{UserID: commenter.Id}, "drive-by")
	require.NoError(t, err)
	target := updated.Comments[0]

	// owning the post does not grant removal of someone else's comment
	_, err = uc.DeleteComment(context.Background(), post.Id, target.Id, domain.Identity{UserID: postOwner.Id})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.GetById(context.Background(), post.Id)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 1)

	remaining, err := uc.DeleteComment(context.Background(), post.Id, target.Id, domain.Identity{UserID: commenter.Id})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestPostDeleteCommentMissing(t *testing.T) {
	author := newTestUser("oscar")
	uc := NewPostUC(newFakePostRepo(), newFakeUserRepo(author), nil, 2*time.Second)
	caller := domain.Identity{UserID: author.Id}

	post, err := uc.Create(context.Background(), caller, "bare")
	require.NoError(t, err)

	_, err = uc.DeleteComment(context.Background(), post.Id, primitive.NewObjectID(), caller)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.DeleteComment(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), caller)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
