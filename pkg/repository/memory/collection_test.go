package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talent/pkg/repository"
)

type doc struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
	N    int      `json:"n"`
}

func TestCollectionNewestFirst(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, c.Insert(ctx, id, doc{ID: id}))
	}

	got, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})

	again, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestCollectionGetMissing(t *testing.T) {
	c := NewCollection[doc]()
	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollectionInsertDuplicate(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	require.NoError(t, c.Insert(ctx, "a", doc{ID: "a"}))
	assert.ErrorIs(t, c.Insert(ctx, "a", doc{ID: "a"}), repository.ErrConflict)
}

func TestCollectionReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	in := doc{ID: "a", Tags: []string{"go"}}
	require.NoError(t, c.Insert(ctx, "a", in))
	in.Tags[0] = "rust"

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	got.Tags[0] = "java"

	again, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, again.Tags)
}

func TestCollectionMutate(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	require.NoError(t, c.Insert(ctx, "a", doc{ID: "a", Name: "first"}))

	out, err := c.Mutate(ctx, "a", func(d *doc) error {
		d.Name = "second"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "second", out.Name)

	boom := errors.New("boom")
	_, err = c.Mutate(ctx, "a", func(d *doc) error {
		d.Name = "third"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Name)

	_, err = c.Mutate(ctx, "missing", func(*doc) error { return nil })
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollectionMutateIsAtomic(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	require.NoError(t, c.Insert(ctx, "a", doc{ID: "a"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Mutate(ctx, "a", func(d *doc) error {
				d.N++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 50, got.N)
}

func TestCollectionDelete(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	for i := 0; i < 3; i++ {
		id := fmt.Sprint(i)
		require.NoError(t, c.Insert(ctx, id, doc{ID: id}))
	}
	require.NoError(t, c.Delete(ctx, "1"))
	assert.Equal(t, 2, c.Len())
	assert.ErrorIs(t, c.Delete(ctx, "1"), repository.ErrNotFound)
}
