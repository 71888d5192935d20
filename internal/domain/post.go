package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionPost = "posts"
)

type Like struct {
	User primitive.ObjectID `bson:"user" json:"user"`
}

type Comment struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Post embeds its likes and comments as subdocuments. Name and Avatar are a
// snapshot of the author at creation time and are not kept in sync with
// later profile edits.
type Post struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	Likes     []Like             `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// LikeResult is what the like/unlike mutations hand back: the current like
// list plus whether the call changed anything. A no-op is a success, not an
// error, because the caller's desired end state already holds.
type LikeResult struct {
	Likes []Like `json:"likes"`
	NoOp  bool   `json:"-"`
}

// PostRepo is typed access to the posts collection. Subdocument mutations
// are conditional, store-level updates; the repo never writes a whole
// document back, so concurrent mutations on the same post cannot lose each
// other's entries.
type PostRepo interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetById(ctx context.Context, id primitive.ObjectID) (Post, error)
	GetAll(ctx context.Context) ([]Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddLike prepends the like unless the user already has one on the post.
	// Returns false when nothing matched, which means the post is missing or
	// the like already exists; callers tell the two apart with GetById.
	AddLike(ctx context.Context, postId primitive.ObjectID, like Like) (bool, error)
	// RemoveLike pulls the caller's like. Returns false when the user had no
	// like on the post; ErrNotFound when the post itself is missing.
	RemoveLike(ctx context.Context, postId, userId primitive.ObjectID) (bool, error)
	AddComment(ctx context.Context, postId primitive.ObjectID, comment Comment) error
	// RemoveComment pulls exactly the comment with the given id.
	RemoveComment(ctx context.Context, postId, commentId primitive.ObjectID) error
}

type PostUC interface {
	Create(ctx context.Context, caller Identity, text string) (Post, error)
	GetAll(ctx context.Context) ([]Post, error)
	GetById(ctx context.Context, id primitive.ObjectID) (Post, error)
	Delete(ctx context.Context, id primitive.ObjectID, caller Identity) error
	Like(ctx context.Context, id primitive.ObjectID, caller Identity) (LikeResult, error)
	Unlike(ctx context.Context, id primitive.ObjectID, caller Identity) (LikeResult, error)
	Comment(ctx context.Context, id primitive.ObjectID, caller Identity, text string) (Post, error)
	DeleteComment(ctx context.Context, postId, commentId primitive.ObjectID, caller Identity) ([]Comment, error)
}
