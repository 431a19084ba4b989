package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/infrastructure/metrics"
	"gighub/pkg/errors"
)

type ProjectUseCase struct {
	jobRepo        repository.JobRepository
	submissionRepo repository.WorkSubmissionRepository
	userRepo       repository.UserRepository
	tx             repository.Transactor
}

func NewProjectUseCase(
	jobRepo repository.JobRepository,
	submissionRepo repository.WorkSubmissionRepository,
	userRepo repository.UserRepository,
	tx repository.Transactor,
) *ProjectUseCase {
	return &ProjectUseCase{
		jobRepo:        jobRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		tx:             tx,
	}
}

type SubmitWorkInput struct {
	JobID string
	Links []string
	Notes string
}

// ViewActiveProjects returns every in-progress job with its client.
func (uc *ProjectUseCase) ViewActiveProjects(ctx context.Context) ([]*entity.ActiveProject, error) {
	jobs, err := uc.jobRepo.List(ctx, entity.JobFilter{Status: entity.JobStatusInProgress})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list active projects")
	}
	if len(jobs) == 0 {
		return nil, errors.NotFoundMessage("No active projects found.")
	}

	clientIDs := make([]string, len(jobs))
	for i, j := range jobs {
		clientIDs[i] = j.ClientID
	}
	clients, err := userSummaries(ctx, uc.userRepo, clientIDs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load clients")
	}

	projects := make([]*entity.ActiveProject, len(jobs))
	for i, j := range jobs {
		projects[i] = &entity.ActiveProject{Job: j, Client: clients[j.ClientID]}
	}
	return projects, nil
}

// SubmitWork stores the submission and completes the job in one transaction,
// whatever state the job was in.
func (uc *ProjectUseCase) SubmitWork(ctx context.Context, freelancerID string, input SubmitWorkInput) (*entity.WorkSubmission, *entity.Job, error) {
	if blank(input.JobID) {
		return nil, nil, errors.Validation("Job ID is required.")
	}

	links := input.Links
	if links == nil {
		links = []string{}
	}

	now := time.Now()
	submission := &entity.WorkSubmission{
		ID:           uuid.New().String(),
		JobID:        input.JobID,
		FreelancerID: freelancerID,
		Links:        links,
		Notes:        input.Notes,
		CreatedAt:    now,
	}

	var job *entity.Job
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		job, err = uc.jobRepo.GetByID(ctx, input.JobID)
		if errors.IsNotFound(err) {
			return errors.NotFoundMessage("Job not found.")
		}
		if err != nil {
			return err
		}

		if err := uc.submissionRepo.Create(ctx, submission); err != nil {
			return err
		}

		job.Status = entity.JobStatusCompleted
		job.UpdatedAt = now
		return uc.jobRepo.Update(ctx, job)
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to submit work")
	}

	metrics.RecordTransition("job", "completed")
	return submission, job, nil
}

// ListSubmissions returns the work submitted for a job, oldest first. The
// owning client sees every submission; anyone else only their own.
func (uc *ProjectUseCase) ListSubmissions(ctx context.Context, userID, jobID string) ([]*entity.WorkSubmission, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if errors.IsNotFound(err) {
		return nil, errors.NotFoundMessage("Job not found.")
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load job")
	}

	submissions, err := uc.submissionRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list submissions")
	}
	if job.ClientID == userID {
		return submissions, nil
	}

	own := make([]*entity.WorkSubmission, 0, len(submissions))
	for _, s := range submissions {
		if s.FreelancerID == userID {
			own = append(own, s)
		}
	}
	return own, nil
}
