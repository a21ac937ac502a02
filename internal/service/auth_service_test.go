package service

import (
	"context"
	"testing"
	"time"

	"copygen/internal/dto"
	"copygen/internal/errs"
	"copygen/internal/repository"
	"copygen/internal/testutil"
	"copygen/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB, *utils.JWTManager) {
	t.Helper()
	db := testutil.NewTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", 30*time.Minute)
	return NewAuthService(repository.NewUserRepository(db), jwtManager), db, jwtManager
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc, _, jwtManager := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Email: "Alice@Example.com", Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, user.IsActive)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)

	claims, err := jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// 邮箱登录, 大小写不敏感
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "ALICE@example.com", Password: "secret123"})
	assert.NoError(t, err)

	me, err := svc.GetMe(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)
}

func TestAuthServiceRegisterConflict(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "alice@example.com", Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "ALICE@example.com", Username: "other", Password: "secret123"})
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "邮箱已被注册", err.Error())

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "other@example.com", Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "用户名已存在", err.Error())
}

func TestAuthServiceInvalidCredentials(t *testing.T) {
	svc, db, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Email: "alice@example.com", Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = svc.GetMe(ctx, user.ID)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = svc.GetMe(ctx, user.ID+100)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}
