package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	return createDoc(ctx, docRef(r.client, paymentsCollection, payment.ID), payment)
}

func (r *firestorePaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	doc, err := getDoc(ctx, docRef(r.client, paymentsCollection, id))
	if err != nil {
		return nil, readErr(err, "Payment")
	}
	return decode[entity.Payment](doc)
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return setDoc(ctx, docRef(r.client, paymentsCollection, payment.ID), payment)
}

func (r *firestorePaymentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error) {
	query := r.client.Collection(paymentsCollection).WhereEntity(partyFilter(userID))
	docs, err := queryDocs(ctx, query)
	if err != nil {
		return nil, err
	}
	payments, err := decodeAll[entity.Payment](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(payments, func(a, b int) bool {
		return payments[a].CreatedAt.After(payments[b].CreatedAt)
	})
	return payments, nil
}

type firestoreEarningsRepository struct {
	client *firestore.Client
}

func NewFirestoreEarningsRepository(client *firestore.Client) repository.EarningsRepository {
	return &firestoreEarningsRepository{
		client: client,
	}
}

func (r *firestoreEarningsRepository) GetByFreelancerID(ctx context.Context, freelancerID string) (*entity.Earnings, error) {
	doc, err := getDoc(ctx, docRef(r.client, earningsCollection, freelancerID))
	if err != nil {
		return nil, readErr(err, "Earnings")
	}
	return decode[entity.Earnings](doc)
}

func (r *firestoreEarningsRepository) Save(ctx context.Context, earnings *entity.Earnings) error {
	earnings.ID = earnings.FreelancerID
	return setDoc(ctx, docRef(r.client, earningsCollection, earnings.FreelancerID), earnings)
}
