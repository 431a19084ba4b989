package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gighub/pkg/logger"
)

type ChargeRequest struct {
	PaymentID    string
	JobID        string
	ClientID     string
	FreelancerID string
	Amount       float64
}

type ChargeResult struct {
	Reference string
	Status    string
	ChargedAt time.Time
}

const ChargeStatusSettled = "settlement"

// PaymentGateway settles a client's payment for a job.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// SimulatedPaymentGateway settles every positive charge immediately.
type SimulatedPaymentGateway struct {
	now func() time.Time
}

func NewSimulatedPaymentGateway() *SimulatedPaymentGateway {
	return &SimulatedPaymentGateway{now: time.Now}
}

func (g *SimulatedPaymentGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("charge amount must be positive, got %.2f", req.Amount)
	}

	ref := fmt.Sprintf("sim-%s", uuid.New().String())
	logger.Debug("Simulated charge for payment %s (job %s): amount=%.2f ref=%s", req.PaymentID, req.JobID, req.Amount, ref)

	return &ChargeResult{
		Reference: ref,
		Status:    ChargeStatusSettled,
		ChargedAt: g.now(),
	}, nil
}
