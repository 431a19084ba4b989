package router

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/handler"
	"gighub/internal/adapter/api/middleware"
)

// SetupPaymentRouter leaves the payment routes unauthenticated.
func SetupPaymentRouter(api *echo.Group) {
	paymentHandler := handler.GetPaymentHandler()

	payments := api.Group("/payments")

	payments.POST("/make", paymentHandler.MakePayment)
	payments.POST("/release", paymentHandler.ReleasePayment)
	payments.GET("/history/:userId", paymentHandler.PaymentHistory)
}

func SetupEarningsRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	earningsHandler := handler.GetEarningsHandler()

	earnings := api.Group("/earnings")
	earnings.Use(authMiddleware.Authenticate)

	earnings.GET("/view", earningsHandler.ViewEarnings)
	earnings.POST("/withdraw", earningsHandler.Withdraw)
}
