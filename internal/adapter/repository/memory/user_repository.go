package memory

import (
	"context"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/pkg/errors"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{s: s}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	defer r.s.lock(ctx)()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	email := entity.NormalizeEmail(user.Email)
	if _, taken := r.s.emails[email]; taken {
		return errors.Conflict("email already registered")
	}

	r.s.emails[email] = user.ID
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	defer r.s.lock(ctx)()

	u, ok := r.s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return cloneUser(u), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	defer r.s.lock(ctx)()

	id, ok := r.s.emails[entity.NormalizeEmail(email)]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return cloneUser(r.s.users[id]), nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	defer r.s.lock(ctx)()

	out := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	defer r.s.lock(ctx)()

	if _, ok := r.s.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}
