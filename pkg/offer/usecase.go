package offer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/pipeline"
	"github.com/artem13815/talent/pkg/repository"
)

// UseCase describes offer management.
type UseCase interface {
	List(ctx context.Context, f Filter) ([]Offer, error)
	Get(ctx context.Context, id string) (Offer, error)
	Create(ctx context.Context, in Input) (Offer, error)
	Update(ctx context.Context, id string, p Patch) (Offer, error)
	Accept(ctx context.Context, id string) (Offer, error)
	Decline(ctx context.Context, id string) (Offer, error)
	// ExpireOverdue moves pending offers whose expiry date has passed to
	// expired and returns them.
	ExpireOverdue(ctx context.Context) ([]Offer, error)
	Stats(ctx context.Context) (Stats, error)
}

const DefaultValidityDays = 14

type Option func(*service)

func WithClock(c clock.Clock) Option { return func(s *service) { s.now = c } }

// WithValidityDays sets the default gap between createdDate and expiryDate.
func WithValidityDays(days int) Option {
	return func(s *service) {
		if days > 0 {
			s.validityDays = days
		}
	}
}

type service struct {
	repo         Repository
	events       events.Emitter
	now          clock.Clock
	validityDays int
}

func NewService(repo Repository, emitter events.Emitter, opts ...Option) UseCase {
	s := &service{repo: repo, events: emitter, now: clock.System, validityDays: DefaultValidityDays}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) List(ctx context.Context, f Filter) ([]Offer, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}
	out := make([]Offer, 0, len(all))
	for _, o := range all {
		if f.CandidateID != "" && o.CandidateID != f.CandidateID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.JobID != "" && o.JobID != f.JobID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (Offer, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return Offer{}, mapErr(err)
	}
	return o, nil
}

func (s *service) Create(ctx context.Context, in Input) (Offer, error) {
	in.CandidateID = strings.TrimSpace(in.CandidateID)
	if in.CandidateID == "" || in.Salary == 0 || strings.TrimSpace(in.StartDate) == "" {
		return Offer{}, ErrMissingFields
	}
	if in.Salary < 0 {
		return Offer{}, ErrInvalidSalary
	}
	start, err := clock.NormalizeDate(in.StartDate)
	if err != nil {
		return Offer{}, ErrInvalidDate
	}

	now := s.now()
	created := clock.Date(now)
	expiry := clock.Date(now.AddDate(0, 0, s.validityDays))
	if strings.TrimSpace(in.ExpiryDate) != "" {
		if expiry, err = clock.NormalizeDate(in.ExpiryDate); err != nil {
			return Offer{}, ErrInvalidDate
		}
	}
	if expiry < created {
		return Offer{}, ErrExpiryTooEarly
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}
	if in.CreatedBy == "" {
		in.CreatedBy = "system"
	}
	benefits := in.Benefits
	if benefits == nil {
		benefits = []string{}
	}

	o := Offer{
		ID:          uuid.NewString(),
		CandidateID: in.CandidateID,
		JobID:       in.JobID,
		Salary:      in.Salary,
		Currency:    in.Currency,
		Benefits:    benefits,
		StartDate:   start,
		Status:      StatusPending,
		CreatedDate: created,
		ExpiryDate:  expiry,
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, o.ID, o); err != nil {
		return Offer{}, errs.Internal(err)
	}
	s.events.Emit(ctx, events.OfferCreated, o.ID, map[string]any{
		"candidateId": o.CandidateID, "salary": o.Salary, "currency": o.Currency,
	})
	return o, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Offer, error) {
	if err := p.validate(); err != nil {
		return Offer{}, err
	}
	var prev Status
	o, err := s.repo.Mutate(ctx, id, func(o *Offer) error {
		prev = o.Status
		if err := p.apply(o); err != nil {
			return err
		}
		if p.Status != nil {
			if err := o.Transition(*p.Status, clock.Date(s.now())); err != nil {
				return err
			}
		}
		if o.ExpiryDate < o.CreatedDate {
			return ErrExpiryTooEarly
		}
		o.UpdatedAt = clock.Advance(o.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return Offer{}, mapErr(err)
	}
	s.emitTransition(ctx, prev, o)
	return o, nil
}

func (s *service) Accept(ctx context.Context, id string) (Offer, error) {
	return s.transition(ctx, id, StatusAccepted)
}

func (s *service) Decline(ctx context.Context, id string) (Offer, error) {
	return s.transition(ctx, id, StatusDeclined)
}

func (s *service) transition(ctx context.Context, id string, target Status) (Offer, error) {
	o, err := s.repo.Mutate(ctx, id, func(o *Offer) error {
		now := s.now()
		if err := o.Transition(target, clock.Date(now)); err != nil {
			return err
		}
		o.UpdatedAt = clock.Advance(o.UpdatedAt, now)
		return nil
	})
	if err != nil {
		return Offer{}, mapErr(err)
	}
	s.emitTransition(ctx, StatusPending, o)
	return o, nil
}

var errNotDue = errors.New("offer not due")

func (s *service) ExpireOverdue(ctx context.Context) ([]Offer, error) {
	pending, err := s.List(ctx, Filter{Status: StatusPending})
	if err != nil {
		return nil, err
	}
	now := s.now()
	today := clock.Date(now)
	var expired []Offer
	for _, candidate := range pending {
		if candidate.ExpiryDate >= today {
			continue
		}
		o, err := s.repo.Mutate(ctx, candidate.ID, func(o *Offer) error {
			// re-checked under the write lock; the offer may have been decided since List
			if o.Status != StatusPending || o.ExpiryDate >= today {
				return errNotDue
			}
			o.Status = StatusExpired
			o.UpdatedAt = clock.Advance(o.UpdatedAt, now)
			return nil
		})
		if errors.Is(err, errNotDue) || errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return expired, mapErr(err)
		}
		s.emitTransition(ctx, StatusPending, o)
		expired = append(expired, o)
	}
	return expired, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, errs.Internal(err)
	}
	st := Stats{Total: len(all)}
	for _, o := range all {
		switch o.Status {
		case StatusPending:
			st.Pending++
		case StatusAccepted:
			st.Accepted++
		case StatusDeclined:
			st.Declined++
		case StatusExpired:
			st.Expired++
		}
	}
	st.AcceptanceRate = pipeline.Percent(st.Accepted, st.Total)
	return st, nil
}

func (s *service) emitTransition(ctx context.Context, prev Status, o Offer) {
	if prev == o.Status {
		return
	}
	var typ events.Type
	switch o.Status {
	case StatusAccepted:
		typ = events.OfferAccepted
	case StatusDeclined:
		typ = events.OfferDeclined
	case StatusExpired:
		typ = events.OfferExpired
	default:
		return
	}
	s.events.Emit(ctx, typ, o.ID, map[string]any{"candidateId": o.CandidateID, "jobId": o.JobID})
}

func (p Patch) validate() error {
	if p.CandidateID != nil && strings.TrimSpace(*p.CandidateID) == "" {
		return ErrMissingFields
	}
	if p.Salary != nil && *p.Salary <= 0 {
		return ErrInvalidSalary
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (p Patch) apply(o *Offer) error {
	if p.CandidateID != nil {
		o.CandidateID = strings.TrimSpace(*p.CandidateID)
	}
	if p.JobID != nil {
		o.JobID = *p.JobID
	}
	if p.Salary != nil {
		o.Salary = *p.Salary
	}
	if p.Currency != nil {
		o.Currency = *p.Currency
	}
	if p.Benefits != nil {
		o.Benefits = p.Benefits
	}
	if p.StartDate != nil {
		d, err := clock.NormalizeDate(*p.StartDate)
		if err != nil {
			return ErrInvalidDate
		}
		o.StartDate = d
	}
	if p.ExpiryDate != nil {
		d, err := clock.NormalizeDate(*p.ExpiryDate)
		if err != nil {
			return ErrInvalidDate
		}
		o.ExpiryDate = d
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
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
