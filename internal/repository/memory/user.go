package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/errors"
)

// UserRepository keeps accounts in process memory, indexed by ID and by
// lowercased email.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

// NewUserRepositoryWithDemoUsers seeds the store with the demo accounts used
// by local development. Both accounts authenticate with "password123".
func NewUserRepositoryWithDemoUsers() (*UserRepository, error) {
	r := NewUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash demo password")
	}
	now := time.Now().UTC()
	seeds := []*domain.User{
		{ID: uuid.NewString(), Name: "Demo User", Email: "user@example.com", PasswordHash: string(hash), Role: domain.RoleCustomer, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Demo Admin", Email: "admin@example.com", PasswordHash: string(hash), Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range seeds {
		if err := r.Create(context.Background(), u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return errors.AlreadyExists("user", "email", user.Email)
	}
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[email] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("user", id)
	}
	cp := *user
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errors.NotFound("user", email)
	}
	cp := *user
	return &cp, nil
}
