package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
)

type firestoreProposalRepository struct {
	client *firestore.Client
}

func NewFirestoreProposalRepository(client *firestore.Client) repository.ProposalRepository {
	return &firestoreProposalRepository{
		client: client,
	}
}

func (r *firestoreProposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	if proposal.ID == "" {
		proposal.ID = entity.ProposalID(proposal.JobID, proposal.FreelancerID)
	}
	return createDoc(ctx, docRef(r.client, proposalsCollection, proposal.ID), proposal)
}

func (r *firestoreProposalRepository) GetByID(ctx context.Context, id string) (*entity.Proposal, error) {
	doc, err := getDoc(ctx, docRef(r.client, proposalsCollection, id))
	if err != nil {
		return nil, readErr(err, "Proposal")
	}
	return decode[entity.Proposal](doc)
}

func (r *firestoreProposalRepository) ListByJob(ctx context.Context, jobID string) ([]*entity.Proposal, error) {
	docs, err := queryDocs(ctx, r.client.Collection(proposalsCollection).Where("jobId", "==", jobID))
	if err != nil {
		return nil, err
	}
	proposals, err := decodeAll[entity.Proposal](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(proposals, func(a, b int) bool {
		return proposals[a].CreatedAt.Before(proposals[b].CreatedAt)
	})
	return proposals, nil
}

func (r *firestoreProposalRepository) Update(ctx context.Context, proposal *entity.Proposal) error {
	return setDoc(ctx, docRef(r.client, proposalsCollection, proposal.ID), proposal)
}

type firestoreWorkSubmissionRepository struct {
	client *firestore.Client
}

func NewFirestoreWorkSubmissionRepository(client *firestore.Client) repository.WorkSubmissionRepository {
	return &firestoreWorkSubmissionRepository{
		client: client,
	}
}

func (r *firestoreWorkSubmissionRepository) Create(ctx context.Context, submission *entity.WorkSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	return createDoc(ctx, docRef(r.client, submissionsCollection, submission.ID), submission)
}

func (r *firestoreWorkSubmissionRepository) ListByJob(ctx context.Context, jobID string) ([]*entity.WorkSubmission, error) {
	docs, err := queryDocs(ctx, r.client.Collection(submissionsCollection).Where("jobId", "==", jobID))
	if err != nil {
		return nil, err
	}
	out, err := decodeAll[entity.WorkSubmission](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out, nil
}
