package offer

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/repository/memory"
)

type publisherMock struct{ mock.Mock }

func (m *publisherMock) Publish(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newService(pub events.Publisher, c *testClock) UseCase {
	return NewService(memory.NewCollection[Offer](), events.NewEmitter(pub, zerolog.Nop()),
		WithClock(c.now), WithValidityDays(14))
}

func sampleInput() Input {
	return Input{
		CandidateID: "1",
		JobID:       "1",
		Salary:      120000,
		Benefits:    []string{"Health Insurance", "401k Match"},
		StartDate:   "2024-02-15",
	}
}

func TestCreateOfferDefaults(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(events.Nop{}, c)

	o, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "USD", o.Currency)
	assert.Equal(t, "2024-01-15", o.CreatedDate)
	assert.Equal(t, "2024-01-29", o.ExpiryDate)
	assert.Equal(t, "system", o.CreatedBy)
	assert.Empty(t, o.AcceptedDate)
}

func TestCreateOfferValidation(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(events.Nop{}, c)
	tests := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"no candidate", func(in *Input) { in.CandidateID = "" }, ErrMissingFields},
		{"no salary", func(in *Input) { in.Salary = 0 }, ErrMissingFields},
		{"no start", func(in *Input) { in.StartDate = "" }, ErrMissingFields},
		{"negative salary", func(in *Input) { in.Salary = -1 }, ErrInvalidSalary},
		{"bad start", func(in *Input) { in.StartDate = "soon" }, ErrInvalidDate},
		{"expiry before creation", func(in *Input) { in.ExpiryDate = "2024-01-14" }, ErrExpiryTooEarly},
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

func TestAcceptIsOneShot(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(events.Nop{}, c)
	ctx := context.Background()
	o, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	c.t = c.t.Add(48 * time.Hour)
	accepted, err := svc.Accept(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, accepted.Status)
	assert.Equal(t, "2024-01-17", accepted.AcceptedDate)

	c.t = c.t.Add(24 * time.Hour)
	_, err = svc.Accept(ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, errs.KindInvalidTransition, errs.KindOf(err))

	_, err = svc.Decline(ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotPending)

	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, accepted, got)
}

func TestDeclineThenDeclineAgain(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(events.Nop{}, c)
	ctx := context.Background()
	o, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	declined, err := svc.Decline(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", declined.DeclinedDate)

	_, err = svc.Decline(ctx, o.ID)
	require.Error(t, err)
	assert.Equal(t, "Offer is not pending", err.Error())

	_, err = svc.Accept(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusFollowsStateMachine(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(events.Nop{}, c)
	ctx := context.Background()
	o, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	salary := 125000.0
	accepted := StatusAccepted
	got, err := svc.Update(ctx, o.ID, Patch{Salary: &salary, Status: &accepted})
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got.Status)
	assert.Equal(t, "2024-01-15", got.AcceptedDate)
	assert.Equal(t, 125000.0, got.Salary)

	pending := StatusPending
	_, err = svc.Update(ctx, o.ID, Patch{Status: &pending})
	assert.ErrorIs(t, err, ErrNotPending)

	early := "2024-01-01"
	notes := "updated"
	_, err = svc.Update(ctx, o.ID, Patch{ExpiryDate: &early, Notes: &notes})
	assert.ErrorIs(t, err, ErrExpiryTooEarly)

	after, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Notes)
}

func TestExpireOverdue(t *testing.T) {
	pub := &publisherMock{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.OfferCreated })).Return(nil).Times(3)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.OfferAccepted })).Return(nil).Once()
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.OfferExpired })).Return(nil).Once()

	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(pub, c)
	ctx := context.Background()

	short := sampleInput()
	short.ExpiryDate = "2024-01-16"
	overdue, err := svc.Create(ctx, short)
	require.NoError(t, err)
	decided, err := svc.Create(ctx, short)
	require.NoError(t, err)
	_, err = svc.Accept(ctx, decided.ID)
	require.NoError(t, err)
	fresh, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	// expiry day itself is still valid
	c.t = time.Date(2024, 1, 16, 23, 0, 0, 0, time.UTC)
	expired, err := svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)

	c.t = time.Date(2024, 1, 17, 1, 0, 0, 0, time.UTC)
	expired, err = svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, overdue.ID, expired[0].ID)
	assert.Equal(t, StatusExpired, expired[0].Status)

	_, err = svc.Accept(ctx, overdue.ID)
	assert.ErrorIs(t, err, ErrNotPending)

	still, err := svc.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, still.Status)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Pending: 1, Accepted: 1, Expired: 1, AcceptanceRate: 33}, st)
	pub.AssertExpectations(t)
}

func TestStatsEmpty(t *testing.T) {
	svc := newService(events.Nop{}, &testClock{t: time.Now()})
	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.AcceptanceRate)
}

func TestSweeperDisabled(t *testing.T) {
	svc := newService(events.Nop{}, &testClock{t: time.Now()})
	s := NewSweeper(svc, 0, zerolog.Nop())
	assert.NoError(t, s.Run(context.Background()))
}

func TestSweeperStopsWithContext(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := newService(events.Nop{}, c)
	in := sampleInput()
	in.ExpiryDate = "2024-01-15"
	o, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	c.t = c.t.AddDate(0, 0, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewSweeper(svc, time.Hour, zerolog.Nop()).Run(ctx) }()

	require.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), o.ID)
		return err == nil && got.Status == StatusExpired
	}, time.Second, 10*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
