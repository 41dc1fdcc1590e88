package service

import (
	"context"
	"testing"
	"time"

	"explore_ia_backend/internal/config"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	users := newStubUsers()
	svc := NewAuthService(users, testConfig())

	u, err := svc.Register(ctx, " Ada ", "Ada@Example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, model.Student, u.Role)
	assert.NotEqual(t, "s3cret!", u.Password)

	_, err = svc.Register(ctx, "Other", "ada@example.com", "x")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	token, logged, err := svc.Login(ctx, "ADA@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	users := newStubUsers()
	u := &model.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, users.Create(ctx, u))
	svc := NewProfileService(users)

	got, err := svc.Update(ctx, u.ID, "Ada Lovelace ", " +55 11 90000-0000")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "+55 11 90000-0000", got.Phone)

	_, err = svc.Get(ctx, 404)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	_, err = svc.Update(ctx, 404, "x", "y")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestProfileChangePassword(t *testing.T) {
	ctx := context.Background()
	users := newStubUsers()
	auth := NewAuthService(users, testConfig())
	u, err := auth.Register(ctx, "Ada", "ada@example.com", "s3cret!")
	require.NoError(t, err)
	svc := NewProfileService(users)

	err = svc.ChangePassword(ctx, u.ID, "s3cret!", "nova-senha", "outra-senha")
	assert.ErrorIs(t, err, util.ErrPasswordMismatch)
	err = svc.ChangePassword(ctx, u.ID, "errada", "nova-senha", "nova-senha")
	assert.ErrorIs(t, err, util.ErrWrongPassword)
	err = svc.ChangePassword(ctx, 404, "s3cret!", "nova-senha", "nova-senha")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "s3cret!", "nova-senha", "nova-senha"))

	_, _, err = auth.Login(ctx, "ada@example.com", "s3cret!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, _, err = auth.Login(ctx, "ada@example.com", "nova-senha")
	assert.NoError(t, err)
}
