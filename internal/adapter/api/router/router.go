package router

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/infrastructure/metrics"
)

const apiPrefix = "/api/v1"

// Setup mounts every route. Handlers must be registered with handler.Setup
// and handler.SetupHealthHandler first.
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, avatarUploads bool) {
	api := e.Group(apiPrefix)

	SetupAuthRouter(api, authMiddleware)
	SetupUserRouter(api, authMiddleware)
	SetupProfileRouter(api, authMiddleware, avatarUploads)
	SetupJobRouter(api, authMiddleware)
	SetupProjectRouter(api, authMiddleware)
	SetupPaymentRouter(api)
	SetupEarningsRouter(api, authMiddleware)
	SetupReviewRouter(api, authMiddleware)
	SetupHealthRouter(e)

	e.GET("/metrics", metrics.Handler())
}
