package ports

import (
	"context"

	"github.com/workpulse/attendance-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string // defaults to employee when empty
	Department string
}

type AuthService interface {
	// Register creates an account, assigns the next EMP### identifier, and
	// returns the created user with a signed token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me returns the profile of the authenticated user.
	Me(ctx context.Context, userID string) (*domain.User, error)
}
