package auth

import (
	"context"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, accessToken string, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Profile(ctx context.Context, userID string) (user.UserResponse, error)
	GenerateSSEToken(ctx context.Context, userID string) (SSETokenResponse, error)

	// Register creates a user; callers must already be admins.
	Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	ListUsers(ctx context.Context) ([]user.UserResponse, error)
	UpdateRole(ctx context.Context, req user.UpdateUserRoleRequest) error

	// EnsureAdmin creates the first admin when the user table is empty.
	EnsureAdmin(ctx context.Context, req user.CreateUserRequest) (bool, error)
}
