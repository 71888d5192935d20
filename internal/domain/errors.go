package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound - the aggregate or subdocument does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden - the caller is authenticated but does not own the resource
	ErrForbidden = errors.New("caller is not the owner")
	// ErrUnauthenticated - the token is absent, malformed or expired
	ErrUnauthenticated = errors.New("missing or invalid token")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every failed field of a request body so the
// client gets all of them in one response instead of the first.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Field+" "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}
