package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/pkg/errors"
)

type jobRepository struct {
	s *Store
}

func NewJobRepository(s *Store) repository.JobRepository {
	return &jobRepository{s: s}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	defer r.s.lock(ctx)()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if _, exists := r.s.jobs[job.ID]; exists {
		return errors.Conflict("job already exists")
	}
	r.s.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	defer r.s.lock(ctx)()

	j, ok := r.s.jobs[id]
	if !ok {
		return nil, errors.NotFound("Job", nil)
	}
	return cloneJob(j), nil
}

func (r *jobRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Job, error) {
	defer r.s.lock(ctx)()

	out := make(map[string]*entity.Job, len(ids))
	for _, id := range ids {
		if j, ok := r.s.jobs[id]; ok {
			out[id] = cloneJob(j)
		}
	}
	return out, nil
}

func (r *jobRepository) List(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error) {
	defer r.s.lock(ctx)()

	jobs := make([]*entity.Job, 0)
	for _, j := range r.s.jobs {
		if filter.Matches(j) {
			jobs = append(jobs, cloneJob(j))
		}
	}
	sort.Slice(jobs, func(a, b int) bool {
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})
	return jobs, nil
}

func (r *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	defer r.s.lock(ctx)()

	if _, ok := r.s.jobs[job.ID]; !ok {
		return errors.NotFound("Job", nil)
	}
	r.s.jobs[job.ID] = cloneJob(job)
	return nil
}

type proposalRepository struct {
	s *Store
}

func NewProposalRepository(s *Store) repository.ProposalRepository {
	return &proposalRepository{s: s}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	defer r.s.lock(ctx)()

	if proposal.ID == "" {
		proposal.ID = entity.ProposalID(proposal.JobID, proposal.FreelancerID)
	}
	if _, exists := r.s.proposals[proposal.ID]; exists {
		return errors.Conflict("proposal already exists")
	}
	r.s.proposals[proposal.ID] = cloneProposal(proposal)
	return nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id string) (*entity.Proposal, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.proposals[id]
	if !ok {
		return nil, errors.NotFound("Proposal", nil)
	}
	return cloneProposal(p), nil
}

func (r *proposalRepository) ListByJob(ctx context.Context, jobID string) ([]*entity.Proposal, error) {
	defer r.s.lock(ctx)()

	proposals := make([]*entity.Proposal, 0)
	for _, p := range r.s.proposals {
		if p.JobID == jobID {
			proposals = append(proposals, cloneProposal(p))
		}
	}
	sort.Slice(proposals, func(a, b int) bool {
		return proposals[a].CreatedAt.Before(proposals[b].CreatedAt)
	})
	return proposals, nil
}

func (r *proposalRepository) Update(ctx context.Context, proposal *entity.Proposal) error {
	defer r.s.lock(ctx)()

	if _, ok := r.s.proposals[proposal.ID]; !ok {
		return errors.NotFound("Proposal", nil)
	}
	r.s.proposals[proposal.ID] = cloneProposal(proposal)
	return nil
}

type workSubmissionRepository struct {
	s *Store
}

func NewWorkSubmissionRepository(s *Store) repository.WorkSubmissionRepository {
	return &workSubmissionRepository{s: s}
}

func (r *workSubmissionRepository) Create(ctx context.Context, submission *entity.WorkSubmission) error {
	defer r.s.lock(ctx)()

	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	r.s.submissions[submission.ID] = cloneSubmission(submission)
	return nil
}

func (r *workSubmissionRepository) ListByJob(ctx context.Context, jobID string) ([]*entity.WorkSubmission, error) {
	defer r.s.lock(ctx)()

	out := make([]*entity.WorkSubmission, 0)
	for _, w := range r.s.submissions {
		if w.JobID == jobID {
			out = append(out, cloneSubmission(w))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out, nil
}
