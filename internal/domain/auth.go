package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is the authenticated user reference derived from a verified token.
type Identity struct {
	UserID primitive.ObjectID
}

type AuthUC interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// Authorize compares the caller with the stored owner of a resource.
// Pure comparison, no I/O.
func Authorize(caller, owner primitive.ObjectID) error {
	if caller != owner {
		return ErrForbidden
	}
	return nil
}
