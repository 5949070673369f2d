package interview

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

func fixedNow() time.Time { return time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC) }

func newService(pub events.Publisher) UseCase {
	return NewService(memory.NewCollection[Interview](), events.NewEmitter(pub, zerolog.Nop()), fixedNow)
}

func sampleInput() Input {
	return Input{
		CandidateID:   "1",
		JobID:         "1",
		Type:          TypeVideo,
		ScheduledDate: "2024-01-20T10:00:00",
		Interviewer:   "John Manager",
	}
}

func TestCreateInterview(t *testing.T) {
	svc := newService(events.Nop{})
	iv, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.NotEmpty(t, iv.ID)
	assert.Equal(t, StatusScheduled, iv.Status)
	assert.Equal(t, DefaultDuration, iv.Duration)
	assert.Equal(t, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), iv.ScheduledDate)
	assert.Nil(t, iv.Rating)
}

func TestCreateInterviewValidation(t *testing.T) {
	svc := newService(events.Nop{})
	tests := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"no candidate", func(in *Input) { in.CandidateID = "" }, ErrMissingFields},
		{"no date", func(in *Input) { in.ScheduledDate = "" }, ErrMissingFields},
		{"no interviewer", func(in *Input) { in.Interviewer = "  " }, ErrMissingFields},
		{"bad date", func(in *Input) { in.ScheduledDate = "next tuesday" }, ErrInvalidDate},
		{"bad type", func(in *Input) { in.Type = "carrier-pigeon" }, ErrInvalidType},
		{"negative duration", func(in *Input) { in.Duration = -5 }, ErrInvalidLength},
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

func TestUpdateRating(t *testing.T) {
	svc := newService(events.Nop{})
	ctx := context.Background()
	iv, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	for _, r := range []int{0, 6} {
		r := r
		_, err = svc.Update(ctx, iv.ID, Patch{Rating: &r})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	four := 4
	completed := StatusCompleted
	feedback := "Strong communicator"
	got, err := svc.Update(ctx, iv.ID, Patch{Rating: &four, Status: &completed, Feedback: &feedback})
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, feedback, got.Feedback)
	assert.True(t, got.UpdatedAt.After(iv.UpdatedAt))
}

func TestCancelKeepsRecord(t *testing.T) {
	pub := &publisherMock{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.InterviewScheduled })).Return(nil).Once()
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.InterviewCancelled })).Return(nil).Once()

	svc := newService(pub)
	ctx := context.Background()
	iv, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	got, err := svc.Get(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	_, err = svc.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	pub.AssertExpectations(t)
}

func TestListAndUpcoming(t *testing.T) {
	svc := newService(events.Nop{})
	ctx := context.Background()

	later := sampleInput()
	later.ScheduledDate = "2024-01-25T15:00:00Z"
	a, err := svc.Create(ctx, later)
	require.NoError(t, err)

	sooner := sampleInput()
	sooner.CandidateID = "2"
	b, err := svc.Create(ctx, sooner)
	require.NoError(t, err)

	past := sampleInput()
	past.ScheduledDate = "2024-01-18T14:00:00"
	_, err = svc.Create(ctx, past)
	require.NoError(t, err)

	upcoming, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, b.ID, upcoming[0].ID)
	assert.Equal(t, a.ID, upcoming[1].ID)

	_, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	upcoming, err = svc.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)

	byCandidate, err := svc.List(ctx, Filter{CandidateID: "2"})
	require.NoError(t, err)
	require.Len(t, byCandidate, 1)
	assert.Equal(t, b.ID, byCandidate[0].ID)

	byDay, err := svc.List(ctx, Filter{Date: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.Equal(t, a.ID, byDay[0].ID)

	cancelled, err := svc.List(ctx, Filter{Status: StatusCancelled, CandidateID: "1"})
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}
