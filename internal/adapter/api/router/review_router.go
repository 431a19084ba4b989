package router

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/handler"
	"gighub/internal/adapter/api/middleware"
)

func SetupReviewRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := api.Group("/reviews")
	reviews.Use(authMiddleware.Authenticate)

	reviews.POST("/submit", reviewHandler.ProvideFeedback)
	reviews.GET("/history", reviewHandler.History)
	reviews.POST("/respond/:id", reviewHandler.Respond)
}
