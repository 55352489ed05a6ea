package repository

import (
	"context"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// GetByEmail returns ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create returns ErrDuplicate when the email is already taken.
	Create(ctx context.Context, u *entity.User) error
}
