// Package checkers adapts infrastructure clients to health.Checker.
package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Timeout bounds every probe.
const Timeout = time.Second

// Pinger is any client exposing a cheap reachability probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc lets a plain function serve as a Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// PingChecker reports a dependency healthy when its Ping succeeds in time.
type PingChecker struct {
	name string
	p    Pinger
}

func NewPingChecker(name string, p Pinger) *PingChecker {
	return &PingChecker{name: name, p: p}
}

// NewPostgresChecker probes the pool with a round trip.
func NewPostgresChecker(pool *pgxpool.Pool) *PingChecker {
	return NewPingChecker("postgres", pool)
}

func NewRedisChecker(client *redis.Client) *PingChecker {
	return NewPingChecker("redis", PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}))
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	return c.p.Ping(ctx)
}
