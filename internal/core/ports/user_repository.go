package ports

import (
	"context"

	"github.com/workpulse/attendance-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// NextEmployeeSeq atomically reserves the next employee sequence number.
	// Safe under concurrent registration.
	NextEmployeeSeq(ctx context.Context) (int64, error)
	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role string) (int64, error)
	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
}
