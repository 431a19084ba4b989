package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gighub/internal/domain/entity"
	"gighub/pkg/errors"
)

func newJobUseCase(f *fixture) *JobUseCase {
	return NewJobUseCase(f.jobs, f.proposals, f.store)
}

func TestJobUseCase_BrowseAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newJobUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")

	f.seedJob(t, client.ID, entity.JobStatusOpen, func(j *entity.Job) {
		j.Title = "React dashboard"
		j.SkillsRequired = []string{"react"}
		j.Budget = 300
	})
	f.seedJob(t, client.ID, entity.JobStatusOpen, func(j *entity.Job) {
		j.Title = "Payments service"
		j.Description = "Go microservice"
		j.SkillsRequired = []string{"go"}
		j.Budget = 900
		j.Duration = "3 months"
	})
	f.seedJob(t, client.ID, entity.JobStatusInProgress)

	all, err := uc.BrowseJobs(ctx, BrowseJobsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	budget := 500.0
	cheap, err := uc.BrowseJobs(ctx, BrowseJobsInput{MaxBudget: &budget})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "React dashboard", cheap[0].Title)

	bySkill, err := uc.BrowseJobs(ctx, BrowseJobsInput{Skills: []string{"go", "rust"}, Duration: "3 months"})
	require.NoError(t, err)
	require.Len(t, bySkill, 1)
	assert.Equal(t, "Payments service", bySkill[0].Title)

	found, err := uc.SearchJobs(ctx, SearchJobsInput{Keyword: "MICROSERVICE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Payments service", found[0].Title)

	none, err := uc.SearchJobs(ctx, SearchJobsInput{Keyword: "mobile"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJobUseCase_SubmitProposal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newJobUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")
	freelancer := f.seedUser(t, entity.RoleFreelancer, "f@x.com")
	open := f.seedJob(t, client.ID, entity.JobStatusOpen)
	closed := f.seedJob(t, client.ID, entity.JobStatusCompleted)

	input := SubmitProposalInput{JobID: open.ID, CoverLetter: "Hire me", ExpectedBudget: 450}

	proposal, err := uc.SubmitProposal(ctx, freelancer.ID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalPending, proposal.Status)
	assert.Equal(t, freelancer.ID, proposal.FreelancerID)

	_, err = uc.SubmitProposal(ctx, freelancer.ID, input)
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = uc.SubmitProposal(ctx, freelancer.ID, SubmitProposalInput{JobID: closed.ID, CoverLetter: "x", ExpectedBudget: 1})
	assert.True(t, errors.IsNotFound(err))

	_, err = uc.SubmitProposal(ctx, freelancer.ID, SubmitProposalInput{JobID: "missing", CoverLetter: "x", ExpectedBudget: 1})
	assert.True(t, errors.IsNotFound(err))

	_, err = uc.SubmitProposal(ctx, freelancer.ID, SubmitProposalInput{JobID: open.ID, ExpectedBudget: 1})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	job, err := f.jobs.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusOpen, job.Status, "submitting a proposal leaves the job untouched")
}

func TestJobUseCase_CreateJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newJobUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")
	freelancer := f.seedUser(t, entity.RoleFreelancer, "f@x.com")

	input := CreateJobInput{
		Title:          "Landing page",
		Description:    "Static site",
		SkillsRequired: []string{"html", " ", "css"},
		Budget:         200,
		Duration:       "1 week",
	}

	job, err := uc.CreateJob(ctx, client, input)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusOpen, job.Status)
	assert.Equal(t, client.ID, job.ClientID)
	assert.Equal(t, []string{"html", "css"}, job.SkillsRequired)

	_, err = uc.CreateJob(ctx, freelancer, input)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	input.Budget = 0
	_, err = uc.CreateJob(ctx, client, input)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestJobUseCase_AcceptProposal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newJobUseCase(f)
	client := f.seedUser(t, entity.RoleClient, "c@x.com")
	other := f.seedUser(t, entity.RoleClient, "o@x.com")
	ann := f.seedUser(t, entity.RoleFreelancer, "ann@x.com")
	bob := f.seedUser(t, entity.RoleFreelancer, "bob@x.com")
	job := f.seedJob(t, client.ID, entity.JobStatusOpen)

	pa, err := uc.SubmitProposal(ctx, ann.ID, SubmitProposalInput{JobID: job.ID, CoverLetter: "a", ExpectedBudget: 400})
	require.NoError(t, err)
	pb, err := uc.SubmitProposal(ctx, bob.ID, SubmitProposalInput{JobID: job.ID, CoverLetter: "b", ExpectedBudget: 450})
	require.NoError(t, err)

	_, _, err = uc.AcceptProposal(ctx, other.ID, job.ID, pa.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, _, err = uc.AcceptProposal(ctx, client.ID, job.ID, "missing")
	assert.True(t, errors.IsNotFound(err))

	updated, accepted, err := uc.AcceptProposal(ctx, client.ID, job.ID, pa.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInProgress, updated.Status)
	assert.Equal(t, ann.ID, updated.FreelancerID)
	assert.Equal(t, entity.ProposalAccepted, accepted.Status)

	rejected, err := f.proposals.GetByID(ctx, pb.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalRejected, rejected.Status)

	_, _, err = uc.AcceptProposal(ctx, client.ID, job.ID, pb.ID)
	assert.True(t, errors.Is(err, errors.CodeInvalidState))

	proposals, err := uc.ListProposals(ctx, client.ID, job.ID)
	require.NoError(t, err)
	assert.Len(t, proposals, 2)

	_, err = uc.ListProposals(ctx, other.ID, job.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}
