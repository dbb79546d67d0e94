package repository

import (
	"context"
	"sort"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// UserRepository defines read access for accounts, plus Put for seeding.
type UserRepository interface {
	Put(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	store Store[domain.User]
}

// NewUserRepository layers account lookups over a record store keyed by
// user id.
func NewUserRepository(store Store[domain.User]) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Put(ctx context.Context, user domain.User) error {
	return r.store.Put(ctx, user.ID, user)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.store.Get(ctx, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	users, err := r.store.ListAll(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// ListByRole returns matching accounts sorted by id for stable iteration.
func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.User, 0, len(users))
	for _, user := range users {
		if user.Role == role {
			matched = append(matched, user)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	users, err := r.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
