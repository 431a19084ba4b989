package repository

import (
	"context"

	"gighub/internal/domain/entity"
)

type UserRepository interface {
	// Create fails with a Conflict error when the email is already claimed.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDs returns the users that exist, keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
