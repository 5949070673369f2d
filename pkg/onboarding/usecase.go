package onboarding

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/repository"
)

// UseCase manages new hire checklists.
type UseCase interface {
	List(ctx context.Context, f Filter) ([]NewHire, error)
	Get(ctx context.Context, id string) (NewHire, error)
	Create(ctx context.Context, in Input) (NewHire, error)
	Update(ctx context.Context, id string, p Patch) (NewHire, error)
	AddTask(ctx context.Context, hireID string, in TaskInput) (NewHire, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus) (Task, error)
	Stats(ctx context.Context) (Stats, error)
}

type Option func(*service)

func WithClock(c clock.Clock) Option { return func(s *service) { s.now = c } }

// WithAutoStatus lets task changes advance the hire's status. Off by default,
// so only explicit updates change it.
func WithAutoStatus(on bool) Option { return func(s *service) { s.autoStatus = on } }

// WithDefaultTasks replaces the starting checklist.
func WithDefaultTasks(tasks []TaskTemplate) Option {
	return func(s *service) {
		if len(tasks) > 0 {
			s.defaults = tasks
		}
	}
}

type service struct {
	repo       Repository
	events     events.Emitter
	now        clock.Clock
	defaults   []TaskTemplate
	autoStatus bool
}

func NewService(repo Repository, emitter events.Emitter, opts ...Option) UseCase {
	s := &service{repo: repo, events: emitter, now: clock.System, defaults: DefaultTasks}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) List(ctx context.Context, f Filter) ([]NewHire, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}
	out := make([]NewHire, 0, len(all))
	for _, h := range all {
		if f.Status != "" && h.Status != f.Status {
			continue
		}
		if f.Department != "" && !strings.EqualFold(h.Department, f.Department) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (NewHire, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return NewHire{}, mapErr(err, ErrNotFound)
	}
	return h, nil
}

func (s *service) Create(ctx context.Context, in Input) (NewHire, error) {
	in.CandidateID = strings.TrimSpace(in.CandidateID)
	in.Name = strings.TrimSpace(in.Name)
	in.Position = strings.TrimSpace(in.Position)
	in.Department = strings.TrimSpace(in.Department)
	if in.CandidateID == "" || in.Name == "" || in.Position == "" || in.Department == "" || strings.TrimSpace(in.StartDate) == "" {
		return NewHire{}, ErrMissingFields
	}
	start, err := clock.NormalizeDate(in.StartDate)
	if err != nil {
		return NewHire{}, ErrInvalidDate
	}

	tasks := make([]Task, 0, len(s.defaults))
	for _, t := range s.defaults {
		tasks = append(tasks, Task{
			ID:          uuid.NewString(),
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Status:      TaskPending,
			Points:      t.Points,
		})
	}
	h := NewHire{
		ID:          uuid.NewString(),
		CandidateID: in.CandidateID,
		Name:        in.Name,
		Position:    in.Position,
		Department:  in.Department,
		StartDate:   start,
		Buddy:       in.Buddy,
		Manager:     in.Manager,
		Status:      StatusPreBoarding,
		Tasks:       tasks,
		UpdatedAt:   s.now(),
	}
	h.Recalculate()
	if err := s.repo.Insert(ctx, h.ID, h); err != nil {
		return NewHire{}, errs.Internal(err)
	}
	s.events.Emit(ctx, events.OnboardingCreated, h.ID, map[string]any{
		"candidateId": h.CandidateID, "department": h.Department, "tasks": len(h.Tasks),
	})
	return h, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (NewHire, error) {
	if err := p.validate(); err != nil {
		return NewHire{}, err
	}
	h, err := s.repo.Mutate(ctx, id, func(h *NewHire) error {
		if err := p.apply(h); err != nil {
			return err
		}
		h.UpdatedAt = clock.Advance(h.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return NewHire{}, mapErr(err, ErrNotFound)
	}
	return h, nil
}

func (s *service) AddTask(ctx context.Context, hireID string, in TaskInput) (NewHire, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return NewHire{}, ErrTaskTitleRequired
	}
	if in.Category == "" {
		in.Category = CategoryDocumentation
	}
	if !in.Category.Valid() {
		return NewHire{}, ErrInvalidCategory
	}
	if in.Points < 0 {
		return NewHire{}, ErrInvalidPoints
	}
	due := ""
	if strings.TrimSpace(in.DueDate) != "" {
		d, err := clock.NormalizeDate(in.DueDate)
		if err != nil {
			return NewHire{}, ErrInvalidDate
		}
		due = d
	}

	h, err := s.repo.Mutate(ctx, hireID, func(h *NewHire) error {
		h.Tasks = append(h.Tasks, Task{
			ID:          uuid.NewString(),
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Status:      TaskPending,
			DueDate:     due,
			Points:      in.Points,
		})
		s.recalculate(h)
		h.UpdatedAt = clock.Advance(h.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return NewHire{}, mapErr(err, ErrNotFound)
	}
	return h, nil
}

// UpdateTaskStatus locates the owning hire, changes the task and recomputes
// the hire's derived fields in the same write.
func (s *service) UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus) (Task, error) {
	if status == "" {
		return Task{}, ErrStatusRequired
	}
	if !status.Valid() {
		return Task{}, ErrInvalidTaskStatus
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return Task{}, errs.Internal(err)
	}
	hireID := ""
	for _, h := range all {
		if h.task(taskID) != nil {
			hireID = h.ID
			break
		}
	}
	if hireID == "" {
		return Task{}, ErrTaskNotFound
	}

	var updated Task
	h, err := s.repo.Mutate(ctx, hireID, func(h *NewHire) error {
		t := h.task(taskID)
		if t == nil {
			return ErrTaskNotFound
		}
		t.Status = status
		updated = *t
		s.recalculate(h)
		h.UpdatedAt = clock.Advance(h.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return Task{}, mapErr(err, ErrTaskNotFound)
	}
	s.events.Emit(ctx, events.OnboardingTaskUpdated, h.ID, map[string]any{
		"taskId": updated.ID, "status": updated.Status, "progress": h.Progress,
	})
	return updated, nil
}

func (s *service) recalculate(h *NewHire) {
	h.Recalculate()
	if s.autoStatus {
		h.AdvanceStatus()
	}
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, errs.Internal(err)
	}
	st := Stats{Total: len(all)}
	sum := 0
	for _, h := range all {
		switch h.Status {
		case StatusPreBoarding:
			st.PreBoarding++
		case StatusOnboarding:
			st.Onboarding++
		case StatusCompleted:
			st.Completed++
		}
		sum += h.Progress
		st.TotalPoints += h.TotalPoints
	}
	if st.Total > 0 {
		st.AverageProgress = int(math.Round(float64(sum) / float64(st.Total)))
	}
	return st, nil
}

func (p Patch) validate() error {
	for _, v := range []*string{p.Name, p.Position, p.Department, p.StartDate} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return ErrMissingFields
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (p Patch) apply(h *NewHire) error {
	if p.Name != nil {
		h.Name = strings.TrimSpace(*p.Name)
	}
	if p.Position != nil {
		h.Position = strings.TrimSpace(*p.Position)
	}
	if p.Department != nil {
		h.Department = strings.TrimSpace(*p.Department)
	}
	if p.StartDate != nil {
		d, err := clock.NormalizeDate(*p.StartDate)
		if err != nil {
			return ErrInvalidDate
		}
		h.StartDate = d
	}
	if p.Buddy != nil {
		h.Buddy = *p.Buddy
	}
	if p.Manager != nil {
		h.Manager = *p.Manager
	}
	if p.Status != nil {
		h.Status = *p.Status
	}
	return nil
}

func mapErr(err error, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	var de *errs.Error
	if errors.As(err, &de) {
		return err
	}
	return errs.Internal(err)
}
