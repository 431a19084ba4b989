package usecase

import (
	"context"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
)

// userSummaries loads the named users in one batch. Unknown ids are absent
// from the result.
func userSummaries(ctx context.Context, userRepo repository.UserRepository, ids []string) (map[string]*entity.UserSummary, error) {
	users, err := userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*entity.UserSummary, len(users))
	for id, u := range users {
		out[id] = u.Summary()
	}
	return out, nil
}

func jobTitles(ctx context.Context, jobRepo repository.JobRepository, ids []string) (map[string]string, error) {
	jobs, err := jobRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(jobs))
	for id, j := range jobs {
		out[id] = j.Title
	}
	return out, nil
}
