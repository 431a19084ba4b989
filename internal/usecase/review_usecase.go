package usecase

import (
	"context"
	"strings"
	"time"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/infrastructure/metrics"
	"gighub/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	jobRepo    repository.JobRepository
	userRepo   repository.UserRepository
	tx         repository.Transactor
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	tx repository.Transactor,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		jobRepo:    jobRepo,
		userRepo:   userRepo,
		tx:         tx,
	}
}

type ProvideFeedbackInput struct {
	JobID    string
	ClientID string
	Rating   int
	Feedback string
}

const duplicateReview = "Feedback for this job has already been submitted."

// ProvideFeedback records the review for a completed job. Each client's job
// takes one review.
func (uc *ReviewUseCase) ProvideFeedback(ctx context.Context, freelancerID string, input ProvideFeedbackInput) (*entity.Review, error) {
	if blank(input.JobID, input.ClientID) {
		return nil, errors.Validation("Job ID and client ID are required.")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5.")
	}

	now := time.Now()
	review := &entity.Review{
		ID:           entity.ReviewID(input.JobID, input.ClientID),
		JobID:        input.JobID,
		ClientID:     input.ClientID,
		FreelancerID: freelancerID,
		Rating:       input.Rating,
		Feedback:     input.Feedback,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		job, err := uc.jobRepo.GetByID(ctx, input.JobID)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}
		if job == nil || job.Status != entity.JobStatusCompleted {
			return errors.InvalidState("Feedback can only be provided for completed jobs.")
		}

		if _, err := uc.reviewRepo.GetByID(ctx, review.ID); err == nil {
			return errors.Conflict(duplicateReview)
		} else if !errors.IsNotFound(err) {
			return err
		}

		return uc.reviewRepo.Create(ctx, review)
	})
	if errors.Is(err, errors.CodeConflict) {
		return nil, errors.Conflict(duplicateReview)
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to submit feedback")
	}

	metrics.RecordTransition("review", "submitted")
	return review, nil
}

// History lists reviews the user gave or received, newest first.
func (uc *ReviewUseCase) History(ctx context.Context, userID string) ([]*entity.ReviewRecord, error) {
	reviews, err := uc.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list feedback")
	}
	if len(reviews) == 0 {
		return nil, errors.NotFoundMessage("No feedback found.")
	}

	var jobIDs, userIDs []string
	for _, r := range reviews {
		jobIDs = append(jobIDs, r.JobID)
		userIDs = append(userIDs, r.ClientID, r.FreelancerID)
	}

	titles, err := jobTitles(ctx, uc.jobRepo, jobIDs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load jobs")
	}
	users, err := userSummaries(ctx, uc.userRepo, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load users")
	}

	records := make([]*entity.ReviewRecord, len(reviews))
	for i, r := range reviews {
		records[i] = &entity.ReviewRecord{
			Review:     r,
			JobTitle:   titles[r.JobID],
			Client:     users[r.ClientID],
			Freelancer: users[r.FreelancerID],
		}
	}
	return records, nil
}

// Respond lets either party attach a reply to the review.
func (uc *ReviewUseCase) Respond(ctx context.Context, userID, reviewID, response string) (*entity.Review, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, errors.Validation("Response is required.")
	}

	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load review")
	}
	if !review.IsParty(userID) {
		return nil, errors.Forbidden("Only parties to the review can respond", nil)
	}

	review.Response = response
	review.UpdatedAt = time.Now()
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "Failed to save response")
	}
	return review, nil
}
