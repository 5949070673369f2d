package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Memory is an in-process TTL cache bounded by capacity. When full, the
// least recently used entry is evicted.
type Memory struct {
	items *ttlcache.Cache[string, []byte]
}

// NewMemory returns a cache holding at most capacity entries; 0 means
// unbounded.
func NewMemory(capacity uint64) *Memory {
	opts := []ttlcache.Option[string, []byte]{
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, []byte](capacity))
	}
	return &Memory{items: ttlcache.New[string, []byte](opts...)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	item := m.items.Get(key)
	if item == nil || item.IsExpired() {
		return nil, ErrMiss
	}
	v := item.Value()
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.items.Set(key, v, ttl)
	return nil
}

func (m *Memory) Len() int { return m.items.Len() }

// Run removes expired entries in the background until ctx is done.
func (m *Memory) Run(ctx context.Context) error {
	go m.items.Start()
	<-ctx.Done()
	m.items.Stop()
	return nil
}
