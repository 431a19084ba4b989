package entity

import (
	"errors"
	"time"
)

type TransactionType string

const (
	TransactionCredit     TransactionType = "credit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

const RecentTransactionLimit = 5

var (
	ErrInvalidAmount     = errors.New("invalid withdrawal amount")
	ErrInsufficientFunds = errors.New("insufficient earnings for withdrawal")
)

type EarningsTransaction struct {
	PaymentID string          `json:"paymentId,omitempty" firestore:"paymentId,omitempty"`
	Amount    float64         `json:"amount" firestore:"amount"`
	Date      time.Time       `json:"date" firestore:"date"`
	Status    PaymentStatus   `json:"status" firestore:"status"`
	Type      TransactionType `json:"type" firestore:"type"`
}

// Earnings is keyed by the freelancer id.
type Earnings struct {
	ID              string                `json:"id" firestore:"id"`
	FreelancerID    string                `json:"freelancerId" firestore:"freelancerId"`
	TotalEarnings   float64               `json:"totalEarnings" firestore:"totalEarnings"`
	PendingPayments float64               `json:"pendingPayments" firestore:"pendingPayments"`
	Transactions    []EarningsTransaction `json:"transactions" firestore:"transactions"`
	UpdatedAt       time.Time             `json:"updatedAt" firestore:"updatedAt"`
}

func NewEarnings(freelancerID string) *Earnings {
	return &Earnings{
		ID:           freelancerID,
		FreelancerID: freelancerID,
		Transactions: []EarningsTransaction{},
	}
}

// Credit books a completed payment.
func (e *Earnings) Credit(paymentID string, amount float64, at time.Time) {
	e.TotalEarnings += amount
	e.Transactions = append(e.Transactions, EarningsTransaction{
		PaymentID: paymentID,
		Amount:    amount,
		Date:      at,
		Status:    PaymentCompleted,
		Type:      TransactionCredit,
	})
	e.UpdatedAt = at
}

// Withdraw deducts amount from the balance. The record is untouched on error.
func (e *Earnings) Withdraw(amount float64, paymentID string, at time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > e.TotalEarnings {
		return ErrInsufficientFunds
	}

	e.TotalEarnings -= amount
	e.Transactions = append(e.Transactions, EarningsTransaction{
		PaymentID: paymentID,
		Amount:    amount,
		Date:      at,
		Status:    PaymentCompleted,
		Type:      TransactionWithdrawal,
	})
	e.UpdatedAt = at
	return nil
}

// Recent returns up to the last n transactions in array order.
func (e *Earnings) Recent(n int) []EarningsTransaction {
	if len(e.Transactions) <= n {
		out := make([]EarningsTransaction, len(e.Transactions))
		copy(out, e.Transactions)
		return out
	}
	out := make([]EarningsTransaction, n)
	copy(out, e.Transactions[len(e.Transactions)-n:])
	return out
}
