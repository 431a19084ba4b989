package repository

import (
	"context"
	stderrors "errors"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gighub/internal/domain/entity"
	"gighub/pkg/errors"
)

// newEmulatorRegistry connects to the Firestore emulator. Tests skip when
// FIRESTORE_EMULATOR_HOST is unset.
func newEmulatorRegistry(t *testing.T) *Registry {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "gighub-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewFirestoreRegistry(client)
}

func TestFirestoreUserRepository_EmailIsUnique(t *testing.T) {
	repos := newEmulatorRegistry(t)
	ctx := context.Background()
	email := uuid.New().String() + "@Example.com"

	first := &entity.User{FirstName: "A", LastName: "B", Email: email, Role: entity.RoleFreelancer, Profile: entity.DefaultProfile()}
	require.NoError(t, repos.Users.Create(ctx, first))

	found, err := repos.Users.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	err = repos.Users.Create(ctx, &entity.User{Email: email, Role: entity.RoleClient})
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = repos.Users.GetByID(ctx, "missing-"+uuid.New().String())
	assert.True(t, errors.IsNotFound(err))
}

func TestFirestoreProposalRepository_OnePerFreelancer(t *testing.T) {
	repos := newEmulatorRegistry(t)
	ctx := context.Background()
	jobID := uuid.New().String()

	p := &entity.Proposal{JobID: jobID, FreelancerID: "f1", CoverLetter: "hi", ExpectedBudget: 10, Status: entity.ProposalPending, CreatedAt: time.Now()}
	require.NoError(t, repos.Proposals.Create(ctx, p))
	assert.Equal(t, entity.ProposalID(jobID, "f1"), p.ID)

	dup := &entity.Proposal{JobID: jobID, FreelancerID: "f1", Status: entity.ProposalPending}
	assert.True(t, errors.Is(repos.Proposals.Create(ctx, dup), errors.CodeConflict))

	list, err := repos.Proposals.ListByJob(ctx, jobID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFirestoreTransactor_RollsBackOnError(t *testing.T) {
	repos := newEmulatorRegistry(t)
	ctx := context.Background()
	freelancerID := uuid.New().String()

	e := entity.NewEarnings(freelancerID)
	e.TotalEarnings = 100
	require.NoError(t, repos.Earnings.Save(ctx, e))

	boom := stderrors.New("boom")
	err := repos.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := repos.Earnings.GetByFreelancerID(ctx, freelancerID)
		if err != nil {
			return err
		}
		require.NoError(t, current.Withdraw(40, "", time.Now()))
		if err := repos.Earnings.Save(ctx, current); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := repos.Earnings.GetByFreelancerID(ctx, freelancerID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.TotalEarnings)
}

func TestFirestorePaymentRepository_ListByUserNewestFirst(t *testing.T) {
	repos := newEmulatorRegistry(t)
	ctx := context.Background()
	clientID := uuid.New().String()
	now := time.Now()

	older := &entity.Payment{ID: uuid.New().String(), JobID: "j1", ClientID: clientID, FreelancerID: "f1", Amount: 10, Status: entity.PaymentPending, CreatedAt: now.Add(-time.Hour)}
	newer := &entity.Payment{ID: uuid.New().String(), JobID: "j2", ClientID: "c2", FreelancerID: clientID, Amount: 20, Status: entity.PaymentPending, CreatedAt: now}
	require.NoError(t, repos.Payments.Create(ctx, older))
	require.NoError(t, repos.Payments.Create(ctx, newer))

	list, err := repos.Payments.ListByUser(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}
