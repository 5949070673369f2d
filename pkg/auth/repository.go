package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/repository"
)

var (
	ErrNotFound           = errs.NotFound("User not found")
	ErrUserAlreadyExists  = errs.Conflict("User already exists")
	ErrInvalidCredentials = errs.Unauthorized("Invalid credentials")
	ErrMissingFields      = errs.Validation("Email and password are required")
	ErrInvalidEmail       = errs.Validation("Invalid email")
	ErrWeakPassword       = errs.Validation("Password must be at least 8 characters")
)

// UserRepository abstracts persistence concerns from the domain layer.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// DocumentStore is the subset of a document collection the user store needs.
type DocumentStore interface {
	Get(ctx context.Context, id string) (User, error)
	Insert(ctx context.Context, id string, u User) error
}

// CollectionRepository keeps users in a document collection keyed by
// normalised email, which makes the uniqueness check part of Insert.
type CollectionRepository struct {
	store DocumentStore
}

func NewCollectionRepository(store DocumentStore) *CollectionRepository {
	return &CollectionRepository{store: store}
}

func (r *CollectionRepository) Create(ctx context.Context, user User) error {
	err := r.store.Insert(ctx, NormalizeEmail(user.Email), user)
	if errors.Is(err, repository.ErrConflict) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *CollectionRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	u, err := r.store.Get(ctx, NormalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
