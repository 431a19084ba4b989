package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/domain/service"
	"gighub/internal/infrastructure/metrics"
	"gighub/pkg/errors"
	"gighub/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo  repository.PaymentRepository
	earningsRepo repository.EarningsRepository
	jobRepo      repository.JobRepository
	userRepo     repository.UserRepository
	gateway      service.PaymentGateway
	tx           repository.Transactor
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	earningsRepo repository.EarningsRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	gateway service.PaymentGateway,
	tx repository.Transactor,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:  paymentRepo,
		earningsRepo: earningsRepo,
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		tx:           tx,
	}
}

type MakePaymentInput struct {
	JobID        string
	ClientID     string
	FreelancerID string
	Amount       float64
}

// MakePayment records a pending payment, charges it and settles it.
func (uc *PaymentUseCase) MakePayment(ctx context.Context, input MakePaymentInput) (*entity.Payment, error) {
	if blank(input.JobID, input.ClientID, input.FreelancerID) || input.Amount <= 0 {
		return nil, errors.Validation("Job ID, client ID, freelancer ID and a positive amount are required.")
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:           uuid.New().String(),
		JobID:        input.JobID,
		ClientID:     input.ClientID,
		FreelancerID: input.FreelancerID,
		Amount:       input.Amount,
		Status:       entity.PaymentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "Failed to create payment")
	}

	charge, err := uc.gateway.Charge(ctx, service.ChargeRequest{
		PaymentID:    payment.ID,
		JobID:        payment.JobID,
		ClientID:     payment.ClientID,
		FreelancerID: payment.FreelancerID,
		Amount:       payment.Amount,
	})
	if err != nil {
		logger.LogTransitionError("payment", payment.ID, "charge", err)
		return nil, errors.Internal("Payment processing failed", err)
	}
	// Anything short of settlement leaves the payment pending for a later release.
	if charge.Status != service.ChargeStatusSettled {
		logger.LogTransitionError("payment", payment.ID, "charge", fmt.Errorf("gateway status %q", charge.Status))
		return nil, errors.Internal("Payment processing failed", nil)
	}

	var settled *entity.Payment
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := uc.paymentRepo.GetByID(ctx, payment.ID)
		if err != nil {
			return err
		}
		current.Reference = charge.Reference
		settled, err = uc.settle(ctx, current, charge.ChargedAt)
		return err
	})
	if err != nil {
		logger.LogTransitionError("payment", payment.ID, "settle", err)
		return nil, errors.Wrap(err, "Failed to settle payment")
	}

	recordSettled(settled)
	return settled, nil
}

// ReleasePayment completes a pending payment.
func (uc *PaymentUseCase) ReleasePayment(ctx context.Context, paymentID string) (*entity.Payment, error) {
	if blank(paymentID) {
		return nil, errors.Validation("Payment ID is required.")
	}

	var released *entity.Payment
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
		if errors.IsNotFound(err) {
			return errors.NotFoundMessage("Payment not found.")
		}
		if err != nil {
			return err
		}
		if payment.Status != entity.PaymentPending {
			return errors.InvalidState("Payment is not in a releasable state.")
		}

		released, err = uc.settle(ctx, payment, time.Now())
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to release payment")
	}

	recordSettled(released)
	return released, nil
}

// settle marks the payment completed and credits the freelancer's earnings,
// creating the record on first credit. Must run inside a transaction.
func (uc *PaymentUseCase) settle(ctx context.Context, payment *entity.Payment, at time.Time) (*entity.Payment, error) {
	// Read the ledger before any write; a first credit starts a new record.
	earnings, err := uc.earningsRepo.GetByFreelancerID(ctx, payment.FreelancerID)
	if errors.IsNotFound(err) {
		earnings = entity.NewEarnings(payment.FreelancerID)
	} else if err != nil {
		return nil, err
	}

	// Complete the payment
	payment.Status = entity.PaymentCompleted
	payment.UpdatedAt = at
	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	// Credit the freelancer
	earnings.Credit(payment.ID, payment.Amount, at)
	if err := uc.earningsRepo.Save(ctx, earnings); err != nil {
		return nil, err
	}

	return payment, nil
}

func recordSettled(payment *entity.Payment) {
	metrics.RecordTransition("payment", "completed")
	metrics.RecordLedger("credit", payment.Amount)
}

// PaymentHistory lists the user's payments, newest first, with job titles and
// both parties filled in.
func (uc *PaymentUseCase) PaymentHistory(ctx context.Context, userID string) ([]*entity.PaymentRecord, error) {
	payments, err := uc.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list payments")
	}
	if len(payments) == 0 {
		return nil, errors.NotFoundMessage("No payment history found.")
	}

	var jobIDs, userIDs []string
	for _, p := range payments {
		jobIDs = append(jobIDs, p.JobID)
		userIDs = append(userIDs, p.ClientID, p.FreelancerID)
	}

	titles, err := jobTitles(ctx, uc.jobRepo, jobIDs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load jobs")
	}
	users, err := userSummaries(ctx, uc.userRepo, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load users")
	}

	records := make([]*entity.PaymentRecord, len(payments))
	for i, p := range payments {
		records[i] = &entity.PaymentRecord{
			Payment:    p,
			JobTitle:   titles[p.JobID],
			Client:     users[p.ClientID],
			Freelancer: users[p.FreelancerID],
		}
	}
	return records, nil
}
