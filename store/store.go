// Package store defines the persistence boundary for todos and users.
// Handlers depend on these interfaces; the mongo types implement them.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todo-api/models"
)

var (
	// ErrNotFound means the id was well formed but matched no document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateEmail is the unique email index firing on user creation.
	ErrDuplicateEmail = errors.New("store: duplicate email")
)

// TodoUpdate is a partial update. Nil pointers leave the field untouched;
// a nil CompletedAt clears the stored value.
type TodoUpdate struct {
	Text        *string
	Completed   *bool
	CompletedAt *int64
}

type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error
	All(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	// Delete removes the document and returns its last state.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	// Update applies the partial update and returns the document after it.
	Update(ctx context.Context, id primitive.ObjectID, update TodoUpdate) (*models.Todo, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByToken matches a user holding the exact auth token.
	FindByToken(ctx context.Context, id primitive.ObjectID, token string) (*models.User, error)
	AppendToken(ctx context.Context, id primitive.ObjectID, token models.AuthToken) error
	// RemoveToken pulls the matching token entry; removing an absent token
	// is not an error.
	RemoveToken(ctx context.Context, id primitive.ObjectID, token string) error
}
