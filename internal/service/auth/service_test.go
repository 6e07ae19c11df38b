package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/auth"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/user"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/jwt"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type inlineTx struct{}

func (inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memUserRepo struct {
	users   map[string]user.User
	touched []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]user.User)}
}

func (m *memUserRepo) find(match func(user.User) bool) (user.User, error) {
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	return m.find(func(u user.User) bool { return strings.EqualFold(u.Email, email) })
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	return m.find(func(u user.User) bool { return strings.EqualFold(u.Username, username) })
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if _, err := m.GetByEmail(ctx, newUser.Email); err == nil {
		return user.User{}, user.ErrUserEmailExists
	}
	if _, err := m.GetByUsername(ctx, newUser.Username); err == nil {
		return user.User{}, user.ErrUsernameExists
	}
	newUser.ID = "user-" + newUser.Username
	newUser.CreatedAt = time.Now()
	newUser.UpdatedAt = newUser.CreatedAt
	m.users[newUser.ID] = newUser
	return newUser, nil
}

func (m *memUserRepo) List(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) UpdateRole(_ context.Context, id string, role user.Role) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	m.users[id] = u
	return nil
}

func (m *memUserRepo) TouchLastLogin(_ context.Context, id string) error {
	m.touched = append(m.touched, id)
	return nil
}

func (m *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type memTokenRepo struct {
	tokens map[string]bool // token -> revoked
}

func (m *memTokenRepo) CreateRefreshToken(_ context.Context, _ string, token string, _ int64, _ auth.SessionTrackingRequest) error {
	m.tokens[token] = false
	return nil
}

func (m *memTokenRepo) IsRefreshTokenRevoked(_ context.Context, token string) (bool, error) {
	revoked, ok := m.tokens[token]
	return !ok || revoked, nil
}

func (m *memTokenRepo) RevokeRefreshToken(_ context.Context, token string) error {
	m.tokens[token] = true
	return nil
}

func newTestService(t *testing.T) (*AuthServiceImpl, *memUserRepo, *memTokenRepo) {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	require.NoError(t, err)

	users := newMemUserRepo()
	tokens := &memTokenRepo{tokens: make(map[string]bool)}
	svc := NewAuthService(inlineTx{}, users, tokens, jwtService).(*AuthServiceImpl)
	return svc, users, tokens
}

func seedUser(t *testing.T, svc *AuthServiceImpl, username string, role user.Role) user.UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), user.CreateUserRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		Role:     string(role),
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	svc, users, tokens := newTestService(t)
	ctx := context.Background()
	created := seedUser(t, svc, "payroll.hr", user.RoleHR)

	for _, login := range []string{"payroll.hr", "PAYROLL.HR@example.com"} {
		resp, err := svc.Login(ctx, auth.LoginRequest{Login: login, Password: "password123"}, auth.SessionTrackingRequest{IPAddress: "127.0.0.1"})
		require.NoError(t, err, login)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Greater(t, resp.RefreshTokenExpiresIn, resp.AccessTokenExpiresIn)
		assert.Contains(t, tokens.tokens, resp.RefreshToken)
	}
	assert.Equal(t, []string{created.ID, created.ID}, users.touched)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	seedUser(t, svc, "viewer", user.RoleViewer)

	_, err := svc.Login(ctx, auth.LoginRequest{Login: "viewer", Password: "wrong-password"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Login: "nobody", Password: "password123"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{}, auth.SessionTrackingRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	seedUser(t, svc, "admin", user.RoleAdmin)

	login, err := svc.Login(ctx, auth.LoginRequest{Login: "admin", Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "access tokens cannot refresh")

	require.NoError(t, svc.Logout(ctx, login.AccessToken, login.RefreshToken))
	assert.True(t, svc.IsTokenRevoked(login.AccessToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	resp := seedUser(t, svc, "clerk", user.RoleViewer)
	assert.Equal(t, "viewer", resp.Role)
	stored := users.users[resp.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	_, err := svc.Register(ctx, user.CreateUserRequest{Username: "clerk2", Email: "clerk@example.com", Password: "password123", Role: "viewer"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = svc.Register(ctx, user.CreateUserRequest{Username: "x", Email: "bad", Password: "short", Role: "owner"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)
}

func TestAuthService_UpdateRole(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()
	resp := seedUser(t, svc, "promote.me", user.RoleViewer)

	require.NoError(t, svc.UpdateRole(ctx, user.UpdateUserRoleRequest{ID: resp.ID, Role: "hr"}))
	assert.Equal(t, user.RoleHR, users.users[resp.ID].Role)

	err := svc.UpdateRole(ctx, user.UpdateUserRoleRequest{ID: "missing", Role: "hr"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()
	req := user.CreateUserRequest{Username: "root", Email: "root@example.com", Password: "password123"}

	created, err := svc.EnsureAdmin(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, users.users, 1)
	assert.Equal(t, user.RoleAdmin, users.users["user-root"].Role)
}

func TestAuthService_GenerateSSEToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	resp := seedUser(t, svc, "watcher", user.RoleViewer)

	tok, err := svc.GenerateSSEToken(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, tok.ExpiresIn)

	userID, err := svc.ValidateSSEToken(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, userID)

	_, err = svc.GenerateSSEToken(ctx, "ghost")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
