package job

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/repository/memory"
)

type publisherMock struct{ mock.Mock }

func (m *publisherMock) Publish(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

func fixedNow() time.Time { return time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC) }

func newService(pub events.Publisher) UseCase {
	return NewService(memory.NewCollection[Job](), events.NewEmitter(pub, zerolog.Nop()), fixedNow)
}

func sampleInput() Input {
	return Input{
		Title:           "Senior Frontend Developer",
		Department:      "Engineering",
		Location:        "San Francisco, CA",
		Type:            TypeFullTime,
		Description:     "Build the UI",
		Requirements:    []string{"5+ years of React"},
		Skills:          []string{"React", "TypeScript"},
		ExperienceLevel: LevelSenior,
		Salary:          Salary{Min: 120000, Max: 160000, Currency: "USD"},
	}
}

func TestCreateJob(t *testing.T) {
	svc := newService(events.Nop{})
	j, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.NotEmpty(t, j.ID)
	assert.Equal(t, StatusActive, j.Status)
	assert.Zero(t, j.Applicants)
	assert.Equal(t, "2024-01-10", j.CreatedDate)
	assert.Equal(t, "system", j.CreatedBy)
}

func TestCreateJobValidation(t *testing.T) {
	svc := newService(events.Nop{})
	tests := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"no title", func(in *Input) { in.Title = "" }, ErrMissingFields},
		{"no department", func(in *Input) { in.Department = "" }, ErrMissingFields},
		{"no location", func(in *Input) { in.Location = " " }, ErrMissingFields},
		{"inverted salary", func(in *Input) { in.Salary = Salary{Min: 10, Max: 5} }, ErrInvalidSalary},
		{"bad type", func(in *Input) { in.Type = "gig" }, ErrInvalidType},
		{"bad level", func(in *Input) { in.ExperienceLevel = "principal" }, ErrInvalidLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateKeepsSalaryInvariant(t *testing.T) {
	svc := newService(events.Nop{})
	ctx := context.Background()
	j, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	_, err = svc.Update(ctx, j.ID, Patch{Salary: &Salary{Min: 200000, Max: 100000}})
	assert.ErrorIs(t, err, ErrInvalidSalary)

	got, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 120000, got.Salary.Min)
}

func TestCloseIsSoftDelete(t *testing.T) {
	pub := &publisherMock{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.JobCreated })).Return(nil).Once()
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.JobClosed })).Return(nil).Once()

	svc := newService(pub)
	ctx := context.Background()
	j, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	closed, err := svc.Close(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, closed.Status)

	// closing twice does not emit again
	_, err = svc.Close(ctx, j.ID)
	require.NoError(t, err)

	got, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, got.Status)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.Close(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	pub.AssertExpectations(t)
}

func TestListFilters(t *testing.T) {
	svc := newService(events.Nop{})
	ctx := context.Background()

	eng, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)
	pm := sampleInput()
	pm.Title, pm.Department = "Product Manager", "Product"
	prod, err := svc.Create(ctx, pm)
	require.NoError(t, err)
	paused := StatusPaused
	_, err = svc.Update(ctx, prod.ID, Patch{Status: &paused})
	require.NoError(t, err)

	got, err := svc.List(ctx, Filter{Department: "engineering"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, eng.ID, got[0].ID)

	got, err = svc.List(ctx, Filter{Status: StatusPaused})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, prod.ID, got[0].ID)

	got, err = svc.List(ctx, Filter{Department: "Product", Status: StatusActive})
	require.NoError(t, err)
	assert.Empty(t, got)

	all, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{prod.ID, eng.ID}, []string{all[0].ID, all[1].ID})
}
