package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gighub/internal/domain/entity"
	apperrors "gighub/pkg/errors"
)

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	jobs := NewJobRepository(s)
	submissions := NewWorkSubmissionRepository(s)

	job := &entity.Job{ID: "j1", Title: "API", Status: entity.JobStatusInProgress}
	require.NoError(t, jobs.Create(ctx, job))

	boom := errors.New("boom")
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, submissions.Create(ctx, &entity.WorkSubmission{JobID: "j1"}))
		job.Status = entity.JobStatusCompleted
		require.NoError(t, jobs.Update(ctx, job))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := jobs.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInProgress, stored.Status)

	subs, err := submissions.ListByJob(ctx, "j1")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestWithinTransaction_Commits(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	earnings := NewEarningsRepository(s)

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		e := entity.NewEarnings("f1")
		e.Credit("p1", 100, time.Now())
		return earnings.Save(ctx, e)
	})
	require.NoError(t, err)

	e, err := earnings.GetByFreelancerID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, e.TotalEarnings)
}

func TestWithinTransaction_SerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	earnings := NewEarningsRepository(s)

	seed := entity.NewEarnings("f1")
	seed.TotalEarnings = 100
	require.NoError(t, earnings.Save(ctx, seed))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.WithinTransaction(ctx, func(ctx context.Context) error {
				e, err := earnings.GetByFreelancerID(ctx, "f1")
				if err != nil {
					return err
				}
				if err := e.Withdraw(30, "", time.Now()); err != nil {
					return err
				}
				return earnings.Save(ctx, e)
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	e, err := earnings.GetByFreelancerID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 10.0, e.TotalEarnings)
}

func TestUserRepository_EmailUnique(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore())

	require.NoError(t, users.Create(ctx, &entity.User{Email: "Ann@X.com", FirstName: "Ann"}))
	err := users.Create(ctx, &entity.User{Email: "ann@x.com"})
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	u, err := users.GetByEmail(ctx, "ANN@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.FirstName)

	_, err = users.GetByID(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProposalRepository_Unique(t *testing.T) {
	ctx := context.Background()
	proposals := NewProposalRepository(NewStore())

	p := &entity.Proposal{JobID: "j1", FreelancerID: "f1", Status: entity.ProposalPending}
	require.NoError(t, proposals.Create(ctx, p))
	assert.Equal(t, "j1_f1", p.ID)

	err := proposals.Create(ctx, &entity.Proposal{JobID: "j1", FreelancerID: "f1"})
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	jobs := NewJobRepository(NewStore())

	require.NoError(t, jobs.Create(ctx, &entity.Job{ID: "j1", SkillsRequired: []string{"go"}, Status: entity.JobStatusOpen}))

	j, err := jobs.GetByID(ctx, "j1")
	require.NoError(t, err)
	j.Status = entity.JobStatusCompleted
	j.SkillsRequired[0] = "rust"

	again, err := jobs.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusOpen, again.Status)
	assert.Equal(t, []string{"go"}, again.SkillsRequired)
}

func TestListByUser_NewestFirst(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentRepository(NewStore())
	now := time.Now()

	require.NoError(t, payments.Create(ctx, &entity.Payment{ID: "old", ClientID: "c1", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, payments.Create(ctx, &entity.Payment{ID: "new", FreelancerID: "c1", CreatedAt: now}))
	require.NoError(t, payments.Create(ctx, &entity.Payment{ID: "other", ClientID: "c2", CreatedAt: now}))

	list, err := payments.ListByUser(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}
