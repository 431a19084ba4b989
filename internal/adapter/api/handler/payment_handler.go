package handler

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/usecase"
	"gighub/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type makePaymentRequest struct {
	JobID        string  `json:"jobId" validate:"required"`
	ClientID     string  `json:"clientId" validate:"required"`
	FreelancerID string  `json:"freelancerId" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

type releasePaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

func (h *PaymentHandler) MakePayment(c echo.Context) error {
	var req makePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.MakePayment(c.Request().Context(), usecase.MakePaymentInput{
		JobID:        req.JobID,
		ClientID:     req.ClientID,
		FreelancerID: req.FreelancerID,
		Amount:       req.Amount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Payment processed successfully.",
		"payment": payment,
	})
}

func (h *PaymentHandler) ReleasePayment(c echo.Context) error {
	var req releasePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.ReleasePayment(c.Request().Context(), req.PaymentID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"message": "Payment released successfully.",
		"payment": payment,
	})
}

func (h *PaymentHandler) PaymentHistory(c echo.Context) error {
	records, err := h.paymentUseCase.PaymentHistory(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, records)
}
