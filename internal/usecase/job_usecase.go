package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/infrastructure/metrics"
	"gighub/pkg/errors"
)

type JobUseCase struct {
	jobRepo      repository.JobRepository
	proposalRepo repository.ProposalRepository
	tx           repository.Transactor
}

func NewJobUseCase(jobRepo repository.JobRepository, proposalRepo repository.ProposalRepository, tx repository.Transactor) *JobUseCase {
	return &JobUseCase{
		jobRepo:      jobRepo,
		proposalRepo: proposalRepo,
		tx:           tx,
	}
}

type BrowseJobsInput struct {
	Skills    []string
	MaxBudget *float64
	Duration  string
}

type SearchJobsInput struct {
	BrowseJobsInput
	Keyword string
}

type SubmitProposalInput struct {
	JobID          string
	CoverLetter    string
	ExpectedBudget float64
}

type CreateJobInput struct {
	Title          string
	Description    string
	SkillsRequired []string
	Budget         float64
	Duration       string
}

const (
	jobNotOpen        = "Job not found or no longer open for proposals."
	duplicateProposal = "You have already submitted a proposal for this job."
)

// BrowseJobs lists open jobs matching every supplied filter.
func (uc *JobUseCase) BrowseJobs(ctx context.Context, input BrowseJobsInput) ([]*entity.Job, error) {
	return uc.list(ctx, input.filter())
}

// SearchJobs is BrowseJobs plus a keyword match on title or description.
func (uc *JobUseCase) SearchJobs(ctx context.Context, input SearchJobsInput) ([]*entity.Job, error) {
	filter := input.BrowseJobsInput.filter()
	filter.Keyword = strings.TrimSpace(input.Keyword)
	return uc.list(ctx, filter)
}

func (in BrowseJobsInput) filter() entity.JobFilter {
	return entity.JobFilter{
		Status:    entity.JobStatusOpen,
		Skills:    in.Skills,
		MaxBudget: in.MaxBudget,
		Duration:  strings.TrimSpace(in.Duration),
	}
}

func (uc *JobUseCase) list(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error) {
	jobs, err := uc.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list jobs")
	}
	return jobs, nil
}

// SubmitProposal records a pending proposal on an open job. A freelancer can
// hold one proposal per job.
func (uc *JobUseCase) SubmitProposal(ctx context.Context, freelancerID string, input SubmitProposalInput) (*entity.Proposal, error) {
	if blank(input.JobID, input.CoverLetter) || input.ExpectedBudget <= 0 {
		return nil, errors.Validation("Job ID, cover letter, and expected budget are required.")
	}

	now := time.Now()
	proposal := &entity.Proposal{
		ID:             entity.ProposalID(input.JobID, freelancerID),
		JobID:          input.JobID,
		FreelancerID:   freelancerID,
		CoverLetter:    input.CoverLetter,
		ExpectedBudget: input.ExpectedBudget,
		Status:         entity.ProposalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		job, err := uc.jobRepo.GetByID(ctx, input.JobID)
		if errors.IsNotFound(err) {
			return errors.NotFoundMessage(jobNotOpen)
		}
		if err != nil {
			return err
		}
		if job.Status != entity.JobStatusOpen {
			return errors.NotFoundMessage(jobNotOpen)
		}

		if _, err := uc.proposalRepo.GetByID(ctx, proposal.ID); err == nil {
			return errors.Conflict(duplicateProposal)
		} else if !errors.IsNotFound(err) {
			return err
		}

		return uc.proposalRepo.Create(ctx, proposal)
	})
	if errors.Is(err, errors.CodeConflict) {
		return nil, errors.Conflict(duplicateProposal)
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to submit proposal")
	}

	metrics.RecordTransition("proposal", "submitted")
	return proposal, nil
}

// CreateJob posts an open job owned by the client.
func (uc *JobUseCase) CreateJob(ctx context.Context, client *entity.User, input CreateJobInput) (*entity.Job, error) {
	if client.Role != entity.RoleClient && client.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Only clients can post jobs", nil)
	}
	if blank(input.Title, input.Description, input.Duration) || input.Budget <= 0 {
		return nil, errors.Validation("Title, description, budget and duration are required.")
	}

	skills := make([]string, 0, len(input.SkillsRequired))
	for _, s := range input.SkillsRequired {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	now := time.Now()
	job := &entity.Job{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		SkillsRequired: skills,
		Budget:         input.Budget,
		Duration:       strings.TrimSpace(input.Duration),
		ClientID:       client.ID,
		Status:         entity.JobStatusOpen,
		ApprovalStatus: entity.ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, errors.Wrap(err, "Failed to create job")
	}

	metrics.RecordTransition("job", "created")
	return job, nil
}

func (uc *JobUseCase) ListProposals(ctx context.Context, clientID, jobID string) ([]*entity.Proposal, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load job")
	}
	if job.ClientID != clientID {
		return nil, errors.Forbidden("You do not own this job", nil)
	}

	proposals, err := uc.proposalRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list proposals")
	}
	return proposals, nil
}

// AcceptProposal awards an open job to one pending proposal. The other
// pending proposals are rejected and the job moves to in-progress.
func (uc *JobUseCase) AcceptProposal(ctx context.Context, clientID, jobID, proposalID string) (*entity.Job, *entity.Proposal, error) {
	var (
		job      *entity.Job
		accepted *entity.Proposal
	)

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Only the owner may pick a freelancer, and only while the job is open.
		var err error
		job, err = uc.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			return err
		}
		if job.ClientID != clientID {
			return errors.Forbidden("You do not own this job", nil)
		}
		if job.Status != entity.JobStatusOpen {
			return errors.InvalidState("Only open jobs can accept proposals.")
		}

		// Find the chosen proposal among the job's own proposals
		proposals, err := uc.proposalRepo.ListByJob(ctx, jobID)
		if err != nil {
			return err
		}
		for _, p := range proposals {
			if p.ID == proposalID {
				accepted = p
			}
		}
		if accepted == nil {
			return errors.NotFoundMessage("Proposal not found for this job.")
		}
		if accepted.Status != entity.ProposalPending {
			return errors.InvalidState("Only pending proposals can be accepted.")
		}

		// Accept it and reject every other pending proposal
		now := time.Now()
		for _, p := range proposals {
			if p.Status != entity.ProposalPending {
				continue
			}
			if p.ID == accepted.ID {
				p.Status = entity.ProposalAccepted
			} else {
				p.Status = entity.ProposalRejected
			}
			p.UpdatedAt = now
			if err := uc.proposalRepo.Update(ctx, p); err != nil {
				return err
			}
		}

		// Assign the freelancer
		job.Status = entity.JobStatusInProgress
		job.FreelancerID = accepted.FreelancerID
		job.UpdatedAt = now
		return uc.jobRepo.Update(ctx, job)
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to accept proposal")
	}

	metrics.RecordTransition("job", "started")
	metrics.RecordTransition("proposal", "accepted")
	return job, accepted, nil
}
