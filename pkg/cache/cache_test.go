package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 50*time.Millisecond))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	assert.Eventually(t, func() bool {
		_, err := m.Get(ctx, "k")
		return err == ErrMiss
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryMiss(t *testing.T) {
	_, err := NewMemory(0).Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCapacityEvictsOldest(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, m.Set(ctx, k, []byte(k), time.Hour))
	}

	assert.Equal(t, 2, m.Len())
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
	got, err := m.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	v := []byte("value")
	require.NoError(t, m.Set(ctx, "k", v, time.Hour))
	v[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

func TestMemoryRunStopsWithContext(t *testing.T) {
	m := NewMemory(0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	require.NoError(t, m.Set(context.Background(), "k", []byte("v"), 20*time.Millisecond))
	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestKeyIsStable(t *testing.T) {
	type req struct {
		Title    string `json:"title"`
		Location string `json:"location"`
	}
	a, err := Key("ai:market", req{"Senior Engineer", "Remote"})
	require.NoError(t, err)
	b, err := Key("ai:market", req{"Senior Engineer", "Remote"})
	require.NoError(t, err)
	c, err := Key("ai:market", req{"Senior Engineer", "New York"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "ai:market:"))
}
