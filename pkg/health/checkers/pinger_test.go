package checkers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPingChecker(t *testing.T) {
	ok := NewPingChecker("ai-service", PingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}))
	assert.Equal(t, "ai-service", ok.Name())
	assert.NoError(t, ok.Check(context.Background()))

	down := errors.New("connection refused")
	bad := NewPingChecker("redis", PingFunc(func(context.Context) error { return down }))
	assert.ErrorIs(t, bad.Check(context.Background()), down)
}
