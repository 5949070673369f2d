package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/artem13815/talent/pkg/repository"
)

type entry struct {
	id   string
	body []byte
}

// Collection keeps JSON encoded documents in insertion order (newest first).
// Values are copied in and out, so callers never share state with the store.
type Collection[T any] struct {
	mu      sync.RWMutex
	entries []entry
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

var _ repository.Collection[struct{}] = (*Collection[struct{}])(nil)

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.entries))
	for _, e := range c.entries {
		v, err := decode[T](e.body)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, repository.ErrNotFound
	}
	return decode[T](c.entries[i].body)
}

func (c *Collection[T]) Insert(ctx context.Context, id string, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(id) >= 0 {
		return repository.ErrConflict
	}
	c.entries = append([]entry{{id: id, body: body}}, c.entries...)
	return nil
}

func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return zero, repository.ErrNotFound
	}
	v, err := decode[T](c.entries[i].body)
	if err != nil {
		return zero, err
	}
	if err := fn(&v); err != nil {
		return zero, err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("encode document: %w", err)
	}
	c.entries[i].body = body
	return v, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return nil
}

// Len reports the number of stored documents.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Collection[T]) index(id string) int {
	for i, e := range c.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

func decode[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode document: %w", err)
	}
	return v, nil
}
