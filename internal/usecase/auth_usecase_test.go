package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gighub/internal/domain/entity"
	"gighub/pkg/errors"
)

func newAuthUseCase(f *fixture) *AuthUseCase {
	return NewAuthUseCase(f.users, f.store, f.tokens, f.hasher)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newAuthUseCase(f)

	user, err := uc.Register(ctx, RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "A@X.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, entity.RoleFreelancer, user.Role)
	assert.Equal(t, entity.DefaultAvatarURL, user.Profile.Avatar)
	assert.NotEqual(t, "pw", user.PasswordHash)

	_, err = uc.Register(ctx, RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = uc.Register(ctx, RegisterInput{FirstName: "Ann", Email: "b@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newAuthUseCase(f)

	_, err := uc.Register(ctx, RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	res, err := uc.Login(ctx, "A@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, entity.RoleFreelancer, res.UserType)

	stored, err := f.users.GetByID(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, res.RefreshToken, stored.RefreshToken)

	_, err = uc.Login(ctx, "a@x.com", "wrong")
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.Login(ctx, "nobody@x.com", "pw")
	assert.True(t, errors.IsNotFound(err))

	_, err = uc.Login(ctx, "", "pw")
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestAuthUseCase_RefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newAuthUseCase(f)

	_, err := uc.Register(ctx, RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	login, err := uc.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	pair, err := uc.RefreshAccessToken(ctx, login.RefreshToken, "freelancer")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, login.RefreshToken, pair.RefreshToken)

	_, err = uc.RefreshAccessToken(ctx, login.RefreshToken, "guest")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	_, err = uc.RefreshAccessToken(ctx, "", "freelancer")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	_, err = uc.RefreshAccessToken(ctx, "garbage", "freelancer")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	require.NoError(t, uc.Logout(ctx, login.User.ID))

	_, err = uc.RefreshAccessToken(ctx, login.RefreshToken, "freelancer")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestAuthUseCase_RefreshRejectsStaleToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newAuthUseCase(f)
	user := f.seedUser(t, entity.RoleClient, "c@x.com")

	stale, err := f.tokens.GenerateRefreshToken(user.ID)
	require.NoError(t, err)

	user.RefreshToken = "something-else"
	require.NoError(t, f.users.Update(ctx, user))

	_, err = uc.RefreshAccessToken(ctx, stale, "client")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newAuthUseCase(f)
	user := f.seedUser(t, entity.RoleFreelancer, "f@x.com")

	token, err := f.tokens.GenerateAccessToken(subjectOf(user))
	require.NoError(t, err)

	got, err := uc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = uc.Authenticate(ctx, "")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	_, err = uc.Authenticate(ctx, "not-a-token")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	ghost, err := f.tokens.GenerateAccessToken(subjectOf(&entity.User{ID: "deleted"}))
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, ghost)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}
