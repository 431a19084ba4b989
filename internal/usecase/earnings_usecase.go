package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/infrastructure/metrics"
	"gighub/pkg/errors"
)

type EarningsUseCase struct {
	earningsRepo repository.EarningsRepository
	tx           repository.Transactor
}

func NewEarningsUseCase(earningsRepo repository.EarningsRepository, tx repository.Transactor) *EarningsUseCase {
	return &EarningsUseCase{
		earningsRepo: earningsRepo,
		tx:           tx,
	}
}

type EarningsSummary struct {
	TotalEarnings   float64                      `json:"totalEarnings"`
	PendingPayments float64                      `json:"pendingPayments"`
	Transactions    []entity.EarningsTransaction `json:"transactions"`
}

type WithdrawInput struct {
	Amount    float64
	PaymentID string
}

const earningsNotFound = "Earnings data not found"

func summarize(e *entity.Earnings) *EarningsSummary {
	return &EarningsSummary{
		TotalEarnings:   e.TotalEarnings,
		PendingPayments: e.PendingPayments,
		Transactions:    e.Recent(entity.RecentTransactionLimit),
	}
}

func (uc *EarningsUseCase) ViewEarnings(ctx context.Context, freelancerID string) (*EarningsSummary, error) {
	earnings, err := uc.earningsRepo.GetByFreelancerID(ctx, freelancerID)
	if errors.IsNotFound(err) {
		return nil, errors.NotFoundMessage(earningsNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load earnings")
	}
	return summarize(earnings), nil
}

// Withdraw deducts amount from the freelancer's balance. The balance check and
// the write happen in one transaction.
func (uc *EarningsUseCase) Withdraw(ctx context.Context, freelancerID string, input WithdrawInput) (*EarningsSummary, error) {
	if input.Amount <= 0 {
		return nil, errors.Validation("Invalid withdrawal amount")
	}

	var updated *entity.Earnings
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Withdrawals never create a ledger
		earnings, err := uc.earningsRepo.GetByFreelancerID(ctx, freelancerID)
		if errors.IsNotFound(err) {
			return errors.NotFoundMessage(earningsNotFound)
		}
		if err != nil {
			return err
		}

		// Debit the balance and append the transaction
		if err := earnings.Withdraw(input.Amount, input.PaymentID, time.Now()); err != nil {
			switch {
			case stderrors.Is(err, entity.ErrInsufficientFunds):
				return errors.Validation("Insufficient earnings for withdrawal")
			default:
				return errors.Validation("Invalid withdrawal amount")
			}
		}

		// Persist
		updated = earnings
		return uc.earningsRepo.Save(ctx, earnings)
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to withdraw funds")
	}

	metrics.RecordLedger("withdrawal", input.Amount)
	return summarize(updated), nil
}
