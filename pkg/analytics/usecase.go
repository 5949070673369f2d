package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
)

type (
	JobReader interface {
		List(ctx context.Context, f job.Filter) ([]job.Job, error)
	}
	CandidateReader interface {
		List(ctx context.Context, f candidate.Filter) ([]candidate.Candidate, error)
	}
	InterviewReader interface {
		List(ctx context.Context, f interview.Filter) ([]interview.Interview, error)
	}
	OfferReader interface {
		List(ctx context.Context, f offer.Filter) ([]offer.Offer, error)
	}
	NewHireReader interface {
		List(ctx context.Context, f onboarding.Filter) ([]onboarding.NewHire, error)
	}
)

// Readers are the stores analytics reads from; the domain use cases satisfy them.
type Readers struct {
	Jobs       JobReader
	Candidates CandidateReader
	Interviews InterviewReader
	Offers     OfferReader
	NewHires   NewHireReader
}

// UseCase serves the analytics endpoints.
type UseCase interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	TimeToHire(ctx context.Context, windowDays int) ([]DepartmentTime, error)
	CandidateSources(ctx context.Context) ([]SourceShare, error)
	DepartmentPerformance(ctx context.Context) ([]DepartmentPerformance, error)
	ConversionFunnel(ctx context.Context) ([]FunnelStep, error)
	Insights(ctx context.Context) ([]Insight, error)
	Export(ctx context.Context, req ExportRequest) (Export, error)
}

type service struct {
	r   Readers
	now clock.Clock
}

func NewService(r Readers, now clock.Clock) UseCase {
	if now == nil {
		now = clock.System
	}
	return &service{r: r, now: now}
}

// Snapshot reads all stores concurrently.
func (s *service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Jobs, err = s.r.Jobs.List(gctx, job.Filter{})
		return err
	})
	g.Go(func() (err error) {
		snap.Candidates, err = s.r.Candidates.List(gctx, candidate.Filter{})
		return err
	})
	g.Go(func() (err error) {
		snap.Interviews, err = s.r.Interviews.List(gctx, interview.Filter{})
		return err
	})
	g.Go(func() (err error) {
		snap.Offers, err = s.r.Offers.List(gctx, offer.Filter{})
		return err
	})
	g.Go(func() (err error) {
		snap.NewHires, err = s.r.NewHires.List(gctx, onboarding.Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *service) Dashboard(ctx context.Context) (Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return snap.Dashboard(), nil
}

func (s *service) TimeToHire(ctx context.Context, windowDays int) ([]DepartmentTime, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.TimeToHire(windowDays, s.now()), nil
}

func (s *service) CandidateSources(ctx context.Context) ([]SourceShare, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.CandidateSources(), nil
}

func (s *service) DepartmentPerformance(ctx context.Context) ([]DepartmentPerformance, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.DepartmentPerformance(), nil
}

func (s *service) ConversionFunnel(ctx context.Context) ([]FunnelStep, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ConversionFunnel(), nil
}

func (s *service) Insights(ctx context.Context) ([]Insight, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Insights(), nil
}

func (s *service) Export(ctx context.Context, req ExportRequest) (Export, error) {
	if err := req.normalize(); err != nil {
		return Export{}, err
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Export{}, err
	}
	now := s.now()
	data, err := snap.Workbook(req, now)
	if err != nil {
		return Export{}, err
	}
	return Export{
		Filename: "talent-analytics-" + now.Format("20060102-150405") + ".xlsx",
		Data:     data,
	}, nil
}
