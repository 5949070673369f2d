package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
	"github.com/artem13815/talent/pkg/pipeline"
	"github.com/artem13815/talent/pkg/repository/memory"
)

var loadedAt = time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC)

func TestDemoDataset(t *testing.T) {
	ds, err := Demo(loadedAt)
	require.NoError(t, err)

	require.Len(t, ds.Jobs, 2)
	assert.Equal(t, "Senior Frontend Developer", ds.Jobs[0].Title)
	assert.Equal(t, job.Salary{Min: 120000, Max: 160000, Currency: "USD"}, ds.Jobs[0].Salary)
	assert.Equal(t, "2024-01-10", ds.Jobs[0].CreatedDate)
	assert.Equal(t, loadedAt, ds.Jobs[0].UpdatedAt)

	require.Len(t, ds.Candidates, 2)
	assert.Equal(t, pipeline.StageInterviewing, ds.Candidates[1].Stage)
	assert.Equal(t, candidate.SourceDirect, ds.Candidates[1].Source)
	assert.Equal(t, "+1 (555) 123-4567", ds.Candidates[0].Phone)

	require.Len(t, ds.Interviews, 2)
	assert.Equal(t, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), ds.Interviews[0].ScheduledDate.UTC())
	require.NotNil(t, ds.Interviews[1].Rating)
	assert.Equal(t, 4, *ds.Interviews[1].Rating)

	require.Len(t, ds.Offers, 2)
	assert.Equal(t, offer.StatusAccepted, ds.Offers[1].Status)
	assert.Equal(t, "2024-01-12", ds.Offers[1].AcceptedDate)

	require.Len(t, ds.NewHires, 2)
	// progress is derived from the tasks, not taken from the file
	assert.Equal(t, 67, ds.NewHires[0].Progress)
	assert.Equal(t, 80, ds.NewHires[0].TotalPoints)
	assert.Equal(t, 50, ds.NewHires[1].Progress)
	assert.Equal(t, onboarding.StatusOnboarding, ds.NewHires[1].Status)
}

func TestOverduePendingOfferIsRebased(t *testing.T) {
	ds, err := Demo(time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	pending := ds.Offers[0]
	assert.Equal(t, offer.StatusPending, pending.Status)
	assert.Equal(t, "2026-10-17", pending.CreatedDate)
	assert.Equal(t, "2026-10-31", pending.ExpiryDate)
	assert.Equal(t, "2026-11-17", pending.StartDate)

	// decided offers keep their history
	assert.Equal(t, "2024-01-10", ds.Offers[1].CreatedDate)
	assert.Equal(t, "2024-01-24", ds.Offers[1].ExpiryDate)
}

func TestPendingOfferWithinWindowIsKept(t *testing.T) {
	ds, err := Demo(loadedAt)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", ds.Offers[0].CreatedDate)
	assert.Equal(t, "2024-01-29", ds.Offers[0].ExpiryDate)
}

func TestApplyKeepsOrderAndIsIdempotent(t *testing.T) {
	ds, err := Demo(loadedAt)
	require.NoError(t, err)

	jobs := memory.NewCollection[job.Job]()
	candidates := memory.NewCollection[candidate.Candidate]()
	interviews := memory.NewCollection[interview.Interview]()
	offers := memory.NewCollection[offer.Offer]()
	hires := memory.NewCollection[onboarding.NewHire]()
	st := Stores{Jobs: jobs, Candidates: candidates, Interviews: interviews, Offers: offers, NewHires: hires}
	ctx := context.Background()

	require.NoError(t, Apply(ctx, st, ds, zerolog.Nop()))
	require.NoError(t, Apply(ctx, st, ds, zerolog.Nop()))

	all, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"1", "2"}, []string{all[0].ID, all[1].ID})

	hs, err := hires.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hs, 2)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("jobs: [unterminated"), loadedAt)
	assert.Error(t, err)

	_, err = Parse([]byte("jobs:\n  - salary: lots\n"), loadedAt)
	assert.Error(t, err)
}
