package repository

import (
	"context"

	"gighub/internal/domain/entity"
)

type ReviewRepository interface {
	// Create fails with a Conflict error when the client's job already has a review.
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	// ListByUser returns reviews where the user is client or freelancer,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Review, error)
}
