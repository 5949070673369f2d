package job

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/repository"
)

// UseCase encapsulates job posting management.
type UseCase interface {
	List(ctx context.Context, f Filter) ([]Job, error)
	Active(ctx context.Context) ([]Job, error)
	Get(ctx context.Context, id string) (Job, error)
	Create(ctx context.Context, in Input) (Job, error)
	Update(ctx context.Context, id string, p Patch) (Job, error)
	// Close is the delete operation: the posting is kept with status closed.
	Close(ctx context.Context, id string) (Job, error)
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

func (s *service) List(ctx context.Context, f Filter) ([]Job, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}
	out := make([]Job, 0, len(all))
	for _, j := range all {
		if f.Department != "" && !strings.EqualFold(j.Department, f.Department) {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (s *service) Active(ctx context.Context) ([]Job, error) {
	return s.List(ctx, Filter{Status: StatusActive})
}

func (s *service) Get(ctx context.Context, id string) (Job, error) {
	j, err := s.repo.Get(ctx, id)
	if err != nil {
		return Job{}, mapErr(err)
	}
	return j, nil
}

func (s *service) Create(ctx context.Context, in Input) (Job, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Department = strings.TrimSpace(in.Department)
	in.Location = strings.TrimSpace(in.Location)
	if in.Title == "" || in.Department == "" || in.Location == "" {
		return Job{}, ErrMissingFields
	}
	if in.Type == "" {
		in.Type = TypeFullTime
	}
	if !in.Type.Valid() {
		return Job{}, ErrInvalidType
	}
	if in.ExperienceLevel == "" {
		in.ExperienceLevel = LevelMid
	}
	if !in.ExperienceLevel.Valid() {
		return Job{}, ErrInvalidLevel
	}
	if err := validSalary(in.Salary); err != nil {
		return Job{}, err
	}
	if in.Salary.Currency == "" {
		in.Salary.Currency = "USD"
	}
	if in.CreatedBy == "" {
		in.CreatedBy = "system"
	}

	now := s.now()
	j := Job{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Department:      in.Department,
		Location:        in.Location,
		Type:            in.Type,
		Status:          StatusActive,
		Description:     in.Description,
		Requirements:    orEmpty(in.Requirements),
		Skills:          orEmpty(in.Skills),
		ExperienceLevel: in.ExperienceLevel,
		Salary:          in.Salary,
		CreatedDate:     clock.Date(now),
		Applicants:      0,
		CreatedBy:       in.CreatedBy,
		UpdatedAt:       now,
	}
	if err := s.repo.Insert(ctx, j.ID, j); err != nil {
		return Job{}, errs.Internal(err)
	}
	s.events.Emit(ctx, events.JobCreated, j.ID, map[string]any{"title": j.Title, "department": j.Department})
	return j, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Job, error) {
	if err := p.validate(); err != nil {
		return Job{}, err
	}
	var wasClosed bool
	j, err := s.repo.Mutate(ctx, id, func(j *Job) error {
		wasClosed = j.Status == StatusClosed
		p.apply(j)
		if err := validSalary(j.Salary); err != nil {
			return err
		}
		j.UpdatedAt = clock.Advance(j.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return Job{}, mapErr(err)
	}
	if !wasClosed && j.Status == StatusClosed {
		s.events.Emit(ctx, events.JobClosed, j.ID, map[string]any{"title": j.Title})
	}
	return j, nil
}

func (s *service) Close(ctx context.Context, id string) (Job, error) {
	closed := StatusClosed
	return s.Update(ctx, id, Patch{Status: &closed})
}

func (p Patch) validate() error {
	for _, v := range []*string{p.Title, p.Department, p.Location} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return ErrMissingFields
		}
	}
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidType
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.ExperienceLevel != nil && !p.ExperienceLevel.Valid() {
		return ErrInvalidLevel
	}
	if p.Applicants != nil && *p.Applicants < 0 {
		return ErrInvalidApplicants
	}
	return nil
}

func (p Patch) apply(j *Job) {
	if p.Title != nil {
		j.Title = strings.TrimSpace(*p.Title)
	}
	if p.Department != nil {
		j.Department = strings.TrimSpace(*p.Department)
	}
	if p.Location != nil {
		j.Location = strings.TrimSpace(*p.Location)
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = p.Requirements
	}
	if p.Skills != nil {
		j.Skills = p.Skills
	}
	if p.ExperienceLevel != nil {
		j.ExperienceLevel = *p.ExperienceLevel
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Applicants != nil {
		j.Applicants = *p.Applicants
	}
}

func validSalary(s Salary) error {
	if s.Min < 0 || s.Max < 0 || s.Min > s.Max {
		return ErrInvalidSalary
	}
	return nil
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
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
