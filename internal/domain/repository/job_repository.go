package repository

import (
	"context"

	"gighub/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Job, error)
	List(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
}

type ProposalRepository interface {
	// Create fails with a Conflict error when the freelancer already has a
	// proposal on the job.
	Create(ctx context.Context, proposal *entity.Proposal) error
	GetByID(ctx context.Context, id string) (*entity.Proposal, error)
	ListByJob(ctx context.Context, jobID string) ([]*entity.Proposal, error)
	Update(ctx context.Context, proposal *entity.Proposal) error
}

type WorkSubmissionRepository interface {
	Create(ctx context.Context, submission *entity.WorkSubmission) error
	ListByJob(ctx context.Context, jobID string) ([]*entity.WorkSubmission, error)
}
