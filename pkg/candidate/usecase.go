package candidate

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/nlp"
	"github.com/artem13815/talent/pkg/pipeline"
	"github.com/artem13815/talent/pkg/repository"
)

// UseCase describes candidate tracking behavior.
type UseCase interface {
	List(ctx context.Context, f Filter) ([]Candidate, error)
	Get(ctx context.Context, id string) (Candidate, error)
	Create(ctx context.Context, in Input) (Candidate, error)
	Update(ctx context.Context, id string, p Patch) (Candidate, error)
	UpdateStage(ctx context.Context, id string, stage pipeline.Stage) (Candidate, error)
	AttachResume(ctx context.Context, id, url string) (Candidate, error)
}

// Scorer assigns the initial AI score (1..5) of a new candidate.
type Scorer func(Input) int

// RandomScorer draws a score uniformly from 1..5.
func RandomScorer(Input) int { return rand.IntN(5) + 1 }

type Option func(*service)

func WithClock(c clock.Clock) Option { return func(s *service) { s.now = c } }

func WithScorer(sc Scorer) Option { return func(s *service) { s.score = sc } }

func WithPolicy(p pipeline.Policy) Option { return func(s *service) { s.policy = p } }

type service struct {
	repo   Repository
	events events.Emitter
	policy pipeline.Policy
	now    clock.Clock
	score  Scorer
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository, emitter events.Emitter, opts ...Option) UseCase {
	s := &service{
		repo:   repo,
		events: emitter,
		now:    clock.System,
		score:  RandomScorer,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (s *service) List(ctx context.Context, f Filter) ([]Candidate, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}
	out := make([]Candidate, 0, len(all))
	for _, c := range all {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f Filter) matches(c Candidate) bool {
	if f.Stage != "" && c.Stage != f.Stage {
		return false
	}
	if f.JobID != "" && c.JobID != f.JobID {
		return false
	}
	if f.Source != "" && c.Source != f.Source {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		return matchesSearch(c, q)
	}
	return true
}

// matchesSearch is a case-insensitive substring match on name, position and
// skills; a skill also matches through its known aliases ("golang" finds "Go").
func matchesSearch(c Candidate, q string) bool {
	lq := strings.ToLower(q)
	if strings.Contains(strings.ToLower(c.Name), lq) || strings.Contains(strings.ToLower(c.Position), lq) {
		return true
	}
	for _, sk := range c.Skills {
		if strings.Contains(strings.ToLower(sk), lq) || nlp.SameSkill(q, sk) {
			return true
		}
	}
	return false
}

func (s *service) Get(ctx context.Context, id string) (Candidate, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Candidate{}, mapErr(err)
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, in Input) (Candidate, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Position = strings.TrimSpace(in.Position)
	if in.Name == "" || in.Email == "" || in.Position == "" {
		return Candidate{}, ErrMissingFields
	}
	if !reEmail.MatchString(in.Email) {
		return Candidate{}, ErrInvalidEmail
	}
	if in.Experience < 0 {
		return Candidate{}, ErrNegativeYears
	}
	if in.Source == "" {
		in.Source = SourceDirect
	}
	if !in.Source.Valid() {
		return Candidate{}, ErrInvalidSource
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}

	now := s.now()
	c := Candidate{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Position:    in.Position,
		Experience:  in.Experience,
		Skills:      in.Skills,
		Stage:       pipeline.StageScreening,
		AIScore:     clampScore(s.score(in)),
		AppliedDate: clock.Date(now),
		ResumeURL:   in.ResumeURL,
		Notes:       in.Notes,
		Status:      pipeline.StatusActive,
		Source:      in.Source,
		JobID:       in.JobID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, c.ID, c); err != nil {
		return Candidate{}, errs.Internal(err)
	}
	s.events.Emit(ctx, events.CandidateCreated, c.ID, map[string]any{
		"name": c.Name, "position": c.Position, "jobId": c.JobID, "source": c.Source,
	})
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Candidate, error) {
	if err := p.validate(); err != nil {
		return Candidate{}, err
	}
	var prevStage pipeline.Stage
	c, err := s.repo.Mutate(ctx, id, func(c *Candidate) error {
		prevStage = c.Stage
		p.apply(c)
		stage, status, err := s.policy.Reconcile(c.Stage, c.Status, p.Stage != nil, p.Status != nil)
		if err != nil {
			return err
		}
		c.Stage, c.Status = stage, status
		c.UpdatedAt = clock.Advance(c.UpdatedAt, s.now())
		return nil
	})
	if err != nil {
		return Candidate{}, mapErr(err)
	}
	if c.Stage != prevStage {
		s.emitStage(ctx, c, prevStage)
	}
	return c, nil
}

func (s *service) UpdateStage(ctx context.Context, id string, stage pipeline.Stage) (Candidate, error) {
	if stage == "" {
		return Candidate{}, ErrStageRequired
	}
	if !stage.Valid() {
		return Candidate{}, ErrInvalidStage
	}
	return s.Update(ctx, id, Patch{Stage: &stage})
}

func (s *service) AttachResume(ctx context.Context, id, url string) (Candidate, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Candidate{}, ErrResumeRequired
	}
	return s.Update(ctx, id, Patch{ResumeURL: &url})
}

func (s *service) emitStage(ctx context.Context, c Candidate, from pipeline.Stage) {
	s.events.Emit(ctx, events.CandidateStageChanged, c.ID, map[string]any{
		"from": from, "to": c.Stage, "status": c.Status,
	})
}

func (p Patch) validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrMissingFields
	}
	if p.Position != nil && strings.TrimSpace(*p.Position) == "" {
		return ErrMissingFields
	}
	if p.Email != nil && !reEmail.MatchString(strings.TrimSpace(*p.Email)) {
		return ErrInvalidEmail
	}
	if p.Experience != nil && *p.Experience < 0 {
		return ErrNegativeYears
	}
	if p.Stage != nil && !p.Stage.Valid() {
		return ErrInvalidStage
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.Source != nil && !p.Source.Valid() {
		return ErrInvalidSource
	}
	if p.AIScore != nil && (*p.AIScore < 1 || *p.AIScore > 5) {
		return ErrInvalidScore
	}
	return nil
}

func (p Patch) apply(c *Candidate) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Position != nil {
		c.Position = strings.TrimSpace(*p.Position)
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
	if p.Skills != nil {
		c.Skills = p.Skills
	}
	if p.Stage != nil {
		c.Stage = *p.Stage
	}
	if p.AIScore != nil {
		c.AIScore = *p.AIScore
	}
	if p.ResumeURL != nil {
		c.ResumeURL = *p.ResumeURL
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Source != nil {
		c.Source = *p.Source
	}
	if p.JobID != nil {
		c.JobID = *p.JobID
	}
}

func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
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
