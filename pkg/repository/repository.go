// Package repository holds the storage contract shared by every backend.
package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Collection is an ordered set of documents of one kind, newest first.
//
// Mutate runs fn against the stored value under the collection's write
// lock (or row lock); if fn returns an error nothing is written and the
// error is returned as is.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, id string, v T) error
	Mutate(ctx context.Context, id string, fn func(*T) error) (T, error)
	Delete(ctx context.Context, id string) error
}
