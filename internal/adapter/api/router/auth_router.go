package router

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/handler"
	"gighub/internal/adapter/api/middleware"
)

func SetupAuthRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := api.Group("/auth")

	auth.POST("/register-freelancer", authHandler.Register)
	auth.POST("/login-user", authHandler.Login)
	auth.POST("/refresh-token", authHandler.RefreshToken)

	auth.POST("/logout-user", authHandler.Logout, authMiddleware.Authenticate)
}
