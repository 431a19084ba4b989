package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/pkg/errors"
)

type paymentRepository struct {
	s *Store
}

func NewPaymentRepository(s *Store) repository.PaymentRepository {
	return &paymentRepository{s: s}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	defer r.s.lock(ctx)()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	r.s.payments[payment.ID] = clonePayment(payment)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.payments[id]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	return clonePayment(p), nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	defer r.s.lock(ctx)()

	if _, ok := r.s.payments[payment.ID]; !ok {
		return errors.NotFound("Payment", nil)
	}
	r.s.payments[payment.ID] = clonePayment(payment)
	return nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error) {
	defer r.s.lock(ctx)()

	out := make([]*entity.Payment, 0)
	for _, p := range r.s.payments {
		if p.ClientID == userID || p.FreelancerID == userID {
			out = append(out, clonePayment(p))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

type earningsRepository struct {
	s *Store
}

func NewEarningsRepository(s *Store) repository.EarningsRepository {
	return &earningsRepository{s: s}
}

func (r *earningsRepository) GetByFreelancerID(ctx context.Context, freelancerID string) (*entity.Earnings, error) {
	defer r.s.lock(ctx)()

	e, ok := r.s.earnings[freelancerID]
	if !ok {
		return nil, errors.NotFound("Earnings", nil)
	}
	return cloneEarnings(e), nil
}

func (r *earningsRepository) Save(ctx context.Context, earnings *entity.Earnings) error {
	defer r.s.lock(ctx)()

	earnings.ID = earnings.FreelancerID
	r.s.earnings[earnings.FreelancerID] = cloneEarnings(earnings)
	return nil
}
