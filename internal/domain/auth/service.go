package auth

import (
	"context"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

// AuthService defines business logic for registration and login
type AuthService interface {
	// Register creates a user, assigns the employee code when applicable,
	// and returns a fresh access token
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login verifies credentials and returns a fresh access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Me resolves the authenticated user's profile
	Me(ctx context.Context, userID string) (user.UserResponse, error)
}
