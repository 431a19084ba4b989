package repository

import (
	"context"

	"gighub/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	// ListByUser returns payments where the user is client or freelancer,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error)
}

type EarningsRepository interface {
	GetByFreelancerID(ctx context.Context, freelancerID string) (*entity.Earnings, error)
	// Save creates or replaces the freelancer's record.
	Save(ctx context.Context, earnings *entity.Earnings) error
}
