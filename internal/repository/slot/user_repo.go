// Package slot implements the domain repositories over the key-value slot
// store. Every repository follows the same contract: a read loads the full
// collection from its slot, a mutation rewrites the full collection. There
// is no locking across slots; concurrent writers race and the last write
// wins.
package slot

import (
	"context"

	"eventboard/internal/domain"
	"eventboard/internal/store"
)

type userRepository struct {
	store store.Store
}

// NewUserRepository returns a UserRepository backed by the users slot.
func NewUserRepository(s store.Store) domain.UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	return store.Read(ctx, r.store, store.SlotUsers, []*domain.User{}), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	users := store.Read(ctx, r.store, store.SlotUsers, []*domain.User{})
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) Append(ctx context.Context, user *domain.User) error {
	users := store.Read(ctx, r.store, store.SlotUsers, []*domain.User{})
	users = append(users, user)
	return store.Write(ctx, r.store, store.SlotUsers, users)
}
