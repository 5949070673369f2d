package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/repository/memory"
)

type tokensMock struct{ mock.Mock }

func (m *tokensMock) Generate(ctx context.Context, user User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func newService(t *testing.T) (AuthUseCase, *tokensMock) {
	t.Helper()
	tokens := &tokensMock{}
	repo := NewCollectionRepository(memory.NewCollection[User]())
	return NewAuthService(repo, tokens, bcrypt.MinCost), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newService(t)
	tokens.On("Generate", mock.Anything, mock.MatchedBy(func(u User) bool { return u.Email == "recruiter@example.com" })).Return("token", nil)
	ctx := context.Background()

	res, err := svc.Register(ctx, "  Recruiter@Example.com ", "", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "recruiter@example.com", res.User.Email)
	assert.Equal(t, "recruiter", res.User.Name)
	assert.Equal(t, "token", res.Token)
	assert.NotEqual(t, "s3cret-pass", res.User.PasswordHash)

	res, err = svc.Login(ctx, "RECRUITER@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token", res.Token)

	_, err = svc.Login(ctx, "recruiter@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
}

func TestRegisterRejects(t *testing.T) {
	svc, tokens := newService(t)
	tokens.On("Generate", mock.Anything, mock.Anything).Return("token", nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "", "s3cret-pass")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Register(ctx, "not-an-email", "", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = svc.Register(ctx, "a@b.co", "", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(ctx, "a@b.co", "A", "s3cret-pass")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "A@B.co", "A", "s3cret-pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestRegisterTokenFailure(t *testing.T) {
	svc, tokens := newService(t)
	tokens.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("signing key missing"))

	_, err := svc.Register(context.Background(), "a@b.co", "A", "s3cret-pass")
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
}
