package interview

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/repository"
)

// UseCase covers interview scheduling.
type UseCase interface {
	List(ctx context.Context, f Filter) ([]Interview, error)
	Upcoming(ctx context.Context) ([]Interview, error)
	Get(ctx context.Context, id string) (Interview, error)
	Create(ctx context.Context, in Input) (Interview, error)
	Update(ctx context.Context, id string, p Patch) (Interview, error)
	Cancel(ctx context.Context, id string) (Interview, error)
}

type service struct {
	repo   Repository
	events events.Emitter
	now    clock.Clock
}

func NewService(repo Repository, emitter events.Emitter, now clock.Clock) UseCase {
	if now == nil {
		now = clock.System
	}
	return &service{repo: repo, events: emitter, now: now}
}

func (s *service) List(ctx context.Context, f Filter) ([]Interview, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}
	out := make([]Interview, 0, len(all))
	for _, iv := range all {
		if f.CandidateID != "" && iv.CandidateID != f.CandidateID {
			continue
		}
		if f.Status != "" && iv.Status != f.Status {
			continue
		}
		if !f.Date.IsZero() && !clock.SameDay(iv.ScheduledDate, f.Date) {
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

// Upcoming lists scheduled interviews after now, soonest first.
func (s *service) Upcoming(ctx context.Context) ([]Interview, error) {
	scheduled, err := s.List(ctx, Filter{Status: StatusScheduled})
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]Interview, 0, len(scheduled))
	for _, iv := range scheduled {
		if iv.ScheduledDate.After(now) {
			out = append(out, iv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (Interview, error) {
	iv, err := s.repo.Get(ctx, id)
	if err != nil {
		return Interview{}, mapErr(err)
	}
	return iv, nil
}

func (s *service) Create(ctx context.Context, in Input) (Interview, error) {
	in.CandidateID = strings.TrimSpace(in.CandidateID)
	in.Interviewer = strings.TrimSpace(in.Interviewer)
	if in.CandidateID == "" || strings.TrimSpace(in.ScheduledDate) == "" || in.Interviewer == "" {
		return Interview{}, ErrMissingFields
	}
	at, err := clock.ParseTimestamp(in.ScheduledDate)
	if err != nil {
		return Interview{}, ErrInvalidDate
	}
	if in.Type == "" {
		in.Type = TypeVideo
	}
	if !in.Type.Valid() {
		return Interview{}, ErrInvalidType
	}
	if in.Duration == 0 {
		in.Duration = DefaultDuration
	}
	if in.Duration < 0 {
		return Interview{}, ErrInvalidLength
	}

	now := s.now()
	iv := Interview{
		ID:            uuid.NewString(),
		CandidateID:   in.CandidateID,
		JobID:         in.JobID,
		Type:          in.Type,
		ScheduledDate: at,
		Duration:      in.Duration,
		Interviewer:   in.Interviewer,
		Status:        StatusScheduled,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, iv.ID, iv); err != nil {
		return Interview{}, errs.Internal(err)
	}
	s.events.Emit(ctx, events.InterviewScheduled, iv.ID, map[string]any{
		"candidateId": iv.CandidateID, "scheduledDate": iv.ScheduledDate, "interviewer": iv.Interviewer,
	})
	return iv, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Interview, error) {
	if err := p.validate(); err != nil {
		return Interview{}, err
	}
	var prev Status
	iv, err := s.repo.Mutate(ctx, id, func(iv *Interview) error {
		prev = iv.Status
		if err := p.apply(iv); err != nil {
			return err
		}
		iv.UpdatedAt = clock.Advance(iv.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return Interview{}, mapErr(err)
	}
	if prev != StatusCancelled && iv.Status == StatusCancelled {
		s.events.Emit(ctx, events.InterviewCancelled, iv.ID, map[string]any{"candidateId": iv.CandidateID})
	}
	return iv, nil
}

// Cancel marks the interview cancelled; the record is kept.
func (s *service) Cancel(ctx context.Context, id string) (Interview, error) {
	cancelled := StatusCancelled
	return s.Update(ctx, id, Patch{Status: &cancelled})
}

func (p Patch) validate() error {
	if p.CandidateID != nil && strings.TrimSpace(*p.CandidateID) == "" {
		return ErrMissingFields
	}
	if p.Interviewer != nil && strings.TrimSpace(*p.Interviewer) == "" {
		return ErrMissingFields
	}
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidType
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return ErrInvalidLength
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return ErrInvalidRating
	}
	if p.ScheduledDate != nil {
		if _, err := clock.ParseTimestamp(*p.ScheduledDate); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}

func (p Patch) apply(iv *Interview) error {
	if p.CandidateID != nil {
		iv.CandidateID = strings.TrimSpace(*p.CandidateID)
	}
	if p.JobID != nil {
		iv.JobID = *p.JobID
	}
	if p.Type != nil {
		iv.Type = *p.Type
	}
	if p.ScheduledDate != nil {
		at, err := clock.ParseTimestamp(*p.ScheduledDate)
		if err != nil {
			return ErrInvalidDate
		}
		iv.ScheduledDate = at
	}
	if p.Duration != nil {
		iv.Duration = *p.Duration
	}
	if p.Interviewer != nil {
		iv.Interviewer = strings.TrimSpace(*p.Interviewer)
	}
	if p.Status != nil {
		iv.Status = *p.Status
	}
	if p.Feedback != nil {
		iv.Feedback = *p.Feedback
	}
	if p.Rating != nil {
		r := *p.Rating
		iv.Rating = &r
	}
	if p.Notes != nil {
		iv.Notes = *p.Notes
	}
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	var de *errs.Error
	if errors.As(err, &de) {
		return err
	}
	return errs.Internal(err)
}
