package offer

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper periodically expires overdue offers until its context ends.
type Sweeper struct {
	offers   UseCase
	interval time.Duration
	log      zerolog.Logger
}

func NewSweeper(offers UseCase, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{offers: offers, interval: interval, log: log}
}

// Run sweeps once immediately and then on every tick. A non-positive
// interval disables the sweeper and Run returns at once.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		s.sweep(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.offers.ExpireOverdue(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("offer expiry sweep failed")
		return
	}
	if len(expired) > 0 {
		s.log.Info().Int("expired", len(expired)).Msg("expired overdue offers")
	}
}
