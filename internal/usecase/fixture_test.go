package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gighub/internal/adapter/repository/memory"
	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/infrastructure/auth"
)

type fixture struct {
	store       *memory.Store
	users       repository.UserRepository
	jobs        repository.JobRepository
	proposals   repository.ProposalRepository
	submissions repository.WorkSubmissionRepository
	payments    repository.PaymentRepository
	earnings    repository.EarningsRepository
	reviews     repository.ReviewRepository
	tokens      *auth.TokenService
	hasher      *auth.PasswordHasher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	return &fixture{
		store:       s,
		users:       memory.NewUserRepository(s),
		jobs:        memory.NewJobRepository(s),
		proposals:   memory.NewProposalRepository(s),
		submissions: memory.NewWorkSubmissionRepository(s),
		payments:    memory.NewPaymentRepository(s),
		earnings:    memory.NewEarningsRepository(s),
		reviews:     memory.NewReviewRepository(s),
		tokens:      auth.NewTokenService("access", time.Hour, "refresh", 24*time.Hour),
		hasher:      auth.NewPasswordHasher(4),
	}
}

func (f *fixture) seedUser(t *testing.T, role entity.Role, email string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:        uuid.New().String(),
		FirstName: "First-" + string(role),
		LastName:  "Last",
		Email:     email,
		Role:      role,
		Profile:   entity.DefaultProfile(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) seedJob(t *testing.T, clientID string, status entity.JobStatus, mutate ...func(*entity.Job)) *entity.Job {
	t.Helper()
	now := time.Now()
	j := &entity.Job{
		ID:             uuid.New().String(),
		Title:          "Build a REST API",
		Description:    "Go backend for a marketplace",
		SkillsRequired: []string{"go"},
		Budget:         500,
		Duration:       "1 month",
		ClientID:       clientID,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, m := range mutate {
		m(j)
	}
	require.NoError(t, f.jobs.Create(context.Background(), j))
	return j
}

func (f *fixture) seedEarnings(t *testing.T, freelancerID string, total float64) {
	t.Helper()
	e := entity.NewEarnings(freelancerID)
	e.TotalEarnings = total
	require.NoError(t, f.earnings.Save(context.Background(), e))
}
