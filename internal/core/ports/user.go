package ports

import (
	"context"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

// CreateUserInput carries the data needed to seed an account. Password must
// already be a bcrypt hash; the repository stores it as given.
type CreateUserInput struct {
	Username string
	Password string
	IsAdmin  bool
}

// UserRepository defines persistence operations for accounts. Lookups on a
// missing identifier or username return domain.ErrUserNotFound.
type UserRepository interface {
	Get(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// Login checks username/password and returns a signed token plus the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// GetUser resolves the account behind a verified token subject.
	GetUser(ctx context.Context, id int) (*domain.User, error)
}
