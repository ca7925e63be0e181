package memory

import (
	"context"
	"strings"
	"sync"

	"indocafe/internal/domain/entity"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

// NewUserRepository returns in-memory staff account storage.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users:   make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(user), nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(repo.users[id]), nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, taken := repo.byEmail[email]; taken {
		return repository.ErrDuplicateEmail
	}

	stored := copyUser(user)
	stored.Email = email
	repo.users[user.ID] = stored
	repo.byEmail[email] = user.ID

	return nil
}

func copyUser(user *entity.User) *entity.User {
	out := *user
	if user.DefaultOutletID != nil {
		outletID := *user.DefaultOutletID
		out.DefaultOutletID = &outletID
	}
	out.AssignedOutletIDs = cloneIDs(user.AssignedOutletIDs)

	return &out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
