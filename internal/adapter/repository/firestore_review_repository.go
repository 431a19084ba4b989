package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = entity.ReviewID(review.JobID, review.ClientID)
	}
	return createDoc(ctx, docRef(r.client, reviewsCollection, review.ID), review)
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := getDoc(ctx, docRef(r.client, reviewsCollection, id))
	if err != nil {
		return nil, readErr(err, "Review")
	}
	return decode[entity.Review](doc)
}

func (r *firestoreReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return setDoc(ctx, docRef(r.client, reviewsCollection, review.ID), review)
}

func (r *firestoreReviewRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	docs, err := queryDocs(ctx, r.client.Collection(reviewsCollection).WhereEntity(partyFilter(userID)))
	if err != nil {
		return nil, err
	}
	reviews, err := decodeAll[entity.Review](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(reviews, func(a, b int) bool {
		return reviews[a].CreatedAt.After(reviews[b].CreatedAt)
	})
	return reviews, nil
}
