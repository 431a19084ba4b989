package handler

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/response"
)

type EarningsHandler struct {
	earningsUseCase *usecase.EarningsUseCase
}

func NewEarningsHandler(earningsUseCase *usecase.EarningsUseCase) *EarningsHandler {
	return &EarningsHandler{
		earningsUseCase: earningsUseCase,
	}
}

// Amount is validated by the use case so a zero or negative value reports
// "Invalid withdrawal amount".
type withdrawRequest struct {
	Amount    float64 `json:"amount"`
	PaymentID string  `json:"paymentId"`
}

func (h *EarningsHandler) ViewEarnings(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	summary, err := h.earningsUseCase.ViewEarnings(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, summary)
}

func (h *EarningsHandler) Withdraw(c echo.Context) error {
	var req withdrawRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	summary, err := h.earningsUseCase.Withdraw(c.Request().Context(), uid, usecase.WithdrawInput{
		Amount:    req.Amount,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"message": "Withdrawal successful",
		"updatedEarnings": map[string]interface{}{
			"totalEarnings": summary.TotalEarnings,
			"transactions":  summary.Transactions,
		},
	})
}
