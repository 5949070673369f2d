package events

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Type names a pipeline event.
type Type string

const (
	CandidateCreated      Type = "candidate.created"
	CandidateStageChanged Type = "candidate.stage_changed"
	JobCreated            Type = "job.created"
	JobClosed             Type = "job.closed"
	InterviewScheduled    Type = "interview.scheduled"
	InterviewCancelled    Type = "interview.cancelled"
	OfferCreated          Type = "offer.created"
	OfferAccepted         Type = "offer.accepted"
	OfferDeclined         Type = "offer.declined"
	OfferExpired          Type = "offer.expired"
	OnboardingCreated     Type = "onboarding.created"
	OnboardingTaskUpdated Type = "onboarding.task_updated"
)

// Event is a fact about an entity, published after the change is stored.
type Event struct {
	Type       Type      `json:"type"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Emitter publishes on behalf of a domain service. Failures are logged
// and swallowed: a lost notification never fails the write that caused it.
type Emitter struct {
	pub Publisher
	log zerolog.Logger
}

func NewEmitter(pub Publisher, log zerolog.Logger) Emitter {
	if pub == nil {
		pub = Nop{}
	}
	return Emitter{pub: pub, log: log}
}

func (e Emitter) Emit(ctx context.Context, typ Type, entityID string, payload any) {
	if e.pub == nil {
		return
	}
	ev := Event{Type: typ, EntityID: entityID, OccurredAt: time.Now().UTC(), Payload: payload}
	if err := e.pub.Publish(ctx, ev); err != nil {
		e.log.Warn().Err(err).Str("event", string(typ)).Str("entity_id", entityID).Msg("event not published")
	}
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Log writes events to the logger. Used when no broker is configured.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log.With().Str("component", "events").Logger()}
}

func (l *Log) Publish(_ context.Context, e Event) error {
	l.log.Info().Str("event", string(e.Type)).Str("entity_id", e.EntityID).Msg("pipeline event")
	return nil
}
