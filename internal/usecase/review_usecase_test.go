package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gighub/internal/domain/entity"
	"gighub/pkg/errors"
)

func newReviewUseCase(f *fixture) *ReviewUseCase {
	return NewReviewUseCase(f.reviews, f.jobs, f.users, f.store)
}

func TestReviewUseCase_ProvideFeedback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newReviewUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")
	freelancer := f.seedUser(t, entity.RoleFreelancer, "f@x.com")
	done := f.seedJob(t, client.ID, entity.JobStatusCompleted)
	running := f.seedJob(t, client.ID, entity.JobStatusInProgress)

	input := ProvideFeedbackInput{JobID: done.ID, ClientID: client.ID, Rating: 5, Feedback: "Great"}

	review, err := uc.ProvideFeedback(ctx, freelancer.ID, input)
	require.NoError(t, err)
	assert.Equal(t, freelancer.ID, review.FreelancerID)

	_, err = uc.ProvideFeedback(ctx, freelancer.ID, input)
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = uc.ProvideFeedback(ctx, freelancer.ID, ProvideFeedbackInput{JobID: running.ID, ClientID: client.ID, Rating: 4})
	assert.True(t, errors.Is(err, errors.CodeInvalidState))

	_, err = uc.ProvideFeedback(ctx, freelancer.ID, ProvideFeedbackInput{JobID: "missing", ClientID: client.ID, Rating: 4})
	assert.True(t, errors.Is(err, errors.CodeInvalidState))

	_, err = uc.ProvideFeedback(ctx, freelancer.ID, ProvideFeedbackInput{JobID: done.ID, ClientID: client.ID, Rating: 6})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestReviewUseCase_HistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newReviewUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")
	freelancer := f.seedUser(t, entity.RoleFreelancer, "f@x.com")

	_, err := uc.History(ctx, client.ID)
	assert.True(t, errors.IsNotFound(err))

	older := f.seedJob(t, client.ID, entity.JobStatusCompleted, func(j *entity.Job) { j.Title = "Older" })
	newer := f.seedJob(t, client.ID, entity.JobStatusCompleted, func(j *entity.Job) { j.Title = "Newer" })

	now := time.Now()
	require.NoError(t, f.reviews.Create(ctx, &entity.Review{JobID: older.ID, ClientID: client.ID, FreelancerID: freelancer.ID, Rating: 3, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, f.reviews.Create(ctx, &entity.Review{JobID: newer.ID, ClientID: client.ID, FreelancerID: freelancer.ID, Rating: 5, CreatedAt: now}))

	records, err := uc.History(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Newer", records[0].JobTitle)
	assert.Equal(t, "Older", records[1].JobTitle)
	assert.Equal(t, client.FirstName, records[0].Client.FirstName)
	assert.Equal(t, freelancer.FirstName, records[0].Freelancer.FirstName)
}

func TestReviewUseCase_Respond(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newReviewUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")
	freelancer := f.seedUser(t, entity.RoleFreelancer, "f@x.com")
	job := f.seedJob(t, client.ID, entity.JobStatusCompleted)

	review, err := uc.ProvideFeedback(ctx, freelancer.ID, ProvideFeedbackInput{JobID: job.ID, ClientID: client.ID, Rating: 4})
	require.NoError(t, err)

	updated, err := uc.Respond(ctx, client.ID, review.ID, "Thanks!")
	require.NoError(t, err)
	assert.Equal(t, "Thanks!", updated.Response)

	_, err = uc.Respond(ctx, "stranger", review.ID, "hi")
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, err = uc.Respond(ctx, client.ID, "missing", "hi")
	assert.True(t, errors.IsNotFound(err))

	_, err = uc.Respond(ctx, client.ID, review.ID, "  ")
	assert.True(t, errors.Is(err, errors.CodeValidation))
}
