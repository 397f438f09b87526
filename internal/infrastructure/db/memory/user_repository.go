package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// UserRepository holds accounts in memory. Accounts are seeded once at
// startup and never deleted.
type UserRepository struct {
	mu    sync.RWMutex
	users *collection[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection[domain.User]()}
}

func (r *UserRepository) Get(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users.list() {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.users.insert(func(id int, createdAt time.Time) domain.User {
		return domain.User{
			ID:        id,
			Username:  input.Username,
			Password:  input.Password,
			IsAdmin:   input.IsAdmin,
			Status:    domain.StatusOnline,
			CreatedAt: createdAt,
		}
	})
	return &user, nil
}

func (r *UserRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users.size()
}
