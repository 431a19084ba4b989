package repository

import (
	"cloud.google.com/go/firestore"

	"gighub/internal/adapter/repository/memory"
	"gighub/internal/domain/repository"
)

// Registry groups the repositories of one datastore with its transactor.
type Registry struct {
	Users       repository.UserRepository
	Jobs        repository.JobRepository
	Proposals   repository.ProposalRepository
	Submissions repository.WorkSubmissionRepository
	Payments    repository.PaymentRepository
	Earnings    repository.EarningsRepository
	Reviews     repository.ReviewRepository
	Transactor  repository.Transactor
}

func NewFirestoreRegistry(client *firestore.Client) *Registry {
	return &Registry{
		Users:       NewFirestoreUserRepository(client),
		Jobs:        NewFirestoreJobRepository(client),
		Proposals:   NewFirestoreProposalRepository(client),
		Submissions: NewFirestoreWorkSubmissionRepository(client),
		Payments:    NewFirestorePaymentRepository(client),
		Earnings:    NewFirestoreEarningsRepository(client),
		Reviews:     NewFirestoreReviewRepository(client),
		Transactor:  NewFirestoreTransactor(client),
	}
}

// NewMemoryRegistry backs every repository with one process-local store.
func NewMemoryRegistry() *Registry {
	s := memory.NewStore()
	return &Registry{
		Users:       memory.NewUserRepository(s),
		Jobs:        memory.NewJobRepository(s),
		Proposals:   memory.NewProposalRepository(s),
		Submissions: memory.NewWorkSubmissionRepository(s),
		Payments:    memory.NewPaymentRepository(s),
		Earnings:    memory.NewEarningsRepository(s),
		Reviews:     memory.NewReviewRepository(s),
		Transactor:  s,
	}
}
