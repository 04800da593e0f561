package domain

import (
	"testing"

	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestAuthDomain() *authDomain {
	return NewAuthDomain(repository.NewUserRepository(), dateutil.NewFixedClock(testNow))
}

func Test_authDomain_Register(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestAuthDomain()

	resp, err := domain.Register(ctx, &model.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "carol", resp.User.Username)
	require.Equal(t, 1, resp.User.CurrentLevel)

	// The token authenticates as the new user.
	var info model.AccessToken
	require.NoError(t, xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &info))
	require.Equal(t, resp.User.ID, info.ID)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Username: "carol",
		Email:    "carol2@example.com",
		Password: "correct horse",
	})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Username is already taken"), err)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Username: "carol2",
		Email:    "carol@example.com",
		Password: "correct horse",
	})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Email is already registered"), err)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "short",
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Password must be at least 8 characters"), err)
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestAuthDomain()

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	resp, err := domain.Login(ctx, &model.LoginRequest{
		Username: "carol",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Username: "carol",
		Password: "wrong password",
	})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Username: "nobody",
		Password: "correct horse",
	})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)
}
