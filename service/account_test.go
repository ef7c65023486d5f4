package service

import (
	"Skyline/config"
	"Skyline/dao"
	"Skyline/pkg/errs"
	"Skyline/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(env *testEnv) *UserService {
	return &UserService{
		PassengerDAO: dao.NewPassengerDAO(env.db),
		Jwt:          &config.Jwt{Secret: "test-secret", ExpiresTime: 3600},
	}
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)
	ctx := context.Background()

	p, err := svc.Register(ctx, &types.RegisterRequest{Name: "Ada", Email: "Ada@Example.com", Password: "pw"})
	require.NoError(t, err)
	require.NotZero(t, p.PassengerID)
	assert.NotEqual(t, "pw", p.Password)

	_, err = svc.Register(ctx, &types.RegisterRequest{Name: "Ada 2", Email: "ada@example.com", Password: "pw"})
	assert.ErrorIs(t, err, errs.ErrConflict)

	_, err = svc.Register(ctx, &types.RegisterRequest{Name: "", Email: "x@example.com", Password: "pw"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	user, token, err := svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, p.PassengerID, user.PassengerID)

	uid, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, p.PassengerID, uid)
}

func TestUserService_LoginRejects(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "nope"})
	assert.ErrorIs(t, err, errs.ErrAuthRequired)

	_, _, err = svc.Login(ctx, &types.LoginRequest{Email: "bob@example.com", Password: "pw"})
	assert.ErrorIs(t, err, errs.ErrAuthRequired)

	_, _, err = svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Authenticate("garbage")
	assert.ErrorIs(t, err, errs.ErrAuthRequired)
}
