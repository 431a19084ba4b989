package router

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/handler"
	"gighub/internal/adapter/api/middleware"
)

func SetupUserRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := api.Group("/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetMe)
}

func SetupProfileRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, avatarUploads bool) {
	profileHandler := handler.GetProfileHandler()

	profiles := api.Group("/profiles")
	profiles.Use(authMiddleware.Authenticate)

	profiles.GET("/", profileHandler.GetProfile)
	profiles.POST("/", profileHandler.CreateProfile)
	profiles.PUT("/", profileHandler.UpdateProfile)
	profiles.DELETE("/delete-profile", profileHandler.DeleteProfile)

	if avatarUploads {
		profiles.POST("/avatar", profileHandler.UploadAvatar)
	}
}
