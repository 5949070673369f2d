package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Report is the readiness outcome, one entry per checker ("ok" or the error).
type Report struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) (Report, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so
// optional dependencies can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Ready runs every checker and returns the first failure, if any, after all
// of them have reported.
func (s *service) Ready(ctx context.Context) (Report, error) {
	rep := Report{Ready: true, Checks: make(map[string]string, len(s.checkers))}
	var first error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			rep.Ready = false
			rep.Checks[ch.Name()] = err.Error()
			if first == nil {
				first = fmt.Errorf("%s: %w", ch.Name(), err)
			}
			continue
		}
		rep.Checks[ch.Name()] = "ok"
	}
	return rep, first
}
