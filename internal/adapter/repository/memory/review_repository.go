package memory

import (
	"context"
	"sort"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/pkg/errors"
)

type reviewRepository struct {
	s *Store
}

func NewReviewRepository(s *Store) repository.ReviewRepository {
	return &reviewRepository{s: s}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	defer r.s.lock(ctx)()

	if review.ID == "" {
		review.ID = entity.ReviewID(review.JobID, review.ClientID)
	}
	if _, exists := r.s.reviews[review.ID]; exists {
		return errors.Conflict("review already exists")
	}
	r.s.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	defer r.s.lock(ctx)()

	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return cloneReview(rv), nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	defer r.s.lock(ctx)()

	if _, ok := r.s.reviews[review.ID]; !ok {
		return errors.NotFound("Review", nil)
	}
	r.s.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	defer r.s.lock(ctx)()

	out := make([]*entity.Review, 0)
	for _, rv := range r.s.reviews {
		if rv.IsParty(userID) {
			out = append(out, cloneReview(rv))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}
