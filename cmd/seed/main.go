package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"gighub/internal/adapter/repository"
	"gighub/internal/domain/entity"
	"gighub/internal/domain/service"
	"gighub/internal/infrastructure/auth"
	"gighub/internal/infrastructure/firebase"
	"gighub/internal/usecase"
	"gighub/pkg/config"
	"gighub/pkg/errors"
	"gighub/pkg/logger"
)

const demoPassword = "password123"

var demoJobs = []usecase.CreateJobInput{
	{
		Title:          "Landing page for a coffee roastery",
		Description:    "Responsive single page site with an order form.",
		SkillsRequired: []string{"html", "css", "react"},
		Budget:         450,
		Duration:       "2 weeks",
	},
	{
		Title:          "REST API for an inventory tool",
		Description:    "Go service with Firestore storage and JWT auth.",
		SkillsRequired: []string{"go", "firestore"},
		Budget:         1200,
		Duration:       "1 month",
	},
	{
		Title:          "Data cleanup script",
		Description:    "Normalize a CSV export and load it into Postgres.",
		SkillsRequired: []string{"python", "sql"},
		Budget:         200,
		Duration:       "1 week",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var repos *repository.Registry
	if cfg.Datastore == config.DatastoreFirestore {
		app, err := firebase.NewApp(ctx, cfg)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer app.Close()
		repos = repository.NewFirestoreRegistry(app.Firestore)
	} else {
		logger.Warn("Seeding the in-memory datastore; nothing will persist")
		repos = repository.NewMemoryRegistry()
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenSecret, cfg.RefreshTokenExpiry)
	authUseCase := usecase.NewAuthUseCase(repos.Users, repos.Transactor, tokens, hasher)
	jobUseCase := usecase.NewJobUseCase(repos.Jobs, repos.Proposals, repos.Transactor)
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Earnings, repos.Jobs, repos.Users, service.NewSimulatedPaymentGateway(), repos.Transactor)

	client, err := seedClient(ctx, repos, hasher)
	if err != nil {
		log.Fatalf("Failed to seed client: %v", err)
	}

	freelancer, err := seedFreelancer(ctx, repos, authUseCase)
	if err != nil {
		log.Fatalf("Failed to seed freelancer: %v", err)
	}

	var jobs []*entity.Job
	for _, input := range demoJobs {
		job, err := jobUseCase.CreateJob(ctx, client, input)
		if err != nil {
			log.Fatalf("Failed to seed job %q: %v", input.Title, err)
		}
		jobs = append(jobs, job)
	}
	logger.Info("Seeded %d open jobs for client %s", len(jobs), client.ID)

	payment, err := paymentUseCase.MakePayment(ctx, usecase.MakePaymentInput{
		JobID:        jobs[0].ID,
		ClientID:     client.ID,
		FreelancerID: freelancer.ID,
		Amount:       1000,
	})
	if err != nil {
		log.Fatalf("Failed to seed earnings: %v", err)
	}
	logger.Info("Credited %.2f to freelancer %s (payment %s)", payment.Amount, freelancer.ID, payment.ID)

	logger.Info("Demo logins: client@example.com / freelancer@example.com, password %q", demoPassword)
}

func seedClient(ctx context.Context, repos *repository.Registry, hasher *auth.PasswordHasher) (*entity.User, error) {
	const email = "client@example.com"

	if existing, err := repos.Users.GetByEmail(ctx, email); err == nil {
		return existing, nil
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    "Demo",
		LastName:     "Client",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleClient,
		Profile:      entity.DefaultProfile(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.Users.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func seedFreelancer(ctx context.Context, repos *repository.Registry, authUseCase *usecase.AuthUseCase) (*entity.User, error) {
	const email = "freelancer@example.com"

	user, err := authUseCase.Register(ctx, usecase.RegisterInput{
		FirstName: "Demo",
		LastName:  "Freelancer",
		Email:     email,
		Password:  demoPassword,
	})
	if errors.Is(err, errors.CodeConflict) {
		return repos.Users.GetByEmail(ctx, email)
	}
	return user, err
}
