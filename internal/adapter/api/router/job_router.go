package router

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/handler"
	"gighub/internal/adapter/api/middleware"
	"gighub/internal/domain/entity"
)

func SetupJobRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	jobHandler := handler.GetJobHandler()

	jobs := api.Group("/jobs")

	// Public routes
	jobs.GET("/browse", jobHandler.BrowseJobs)
	jobs.GET("/search", jobHandler.SearchJobs)

	// Protected routes
	jobs.POST("/proposals", jobHandler.SubmitProposal, authMiddleware.Authenticate)

	clientOnly := middleware.RequireRoles(entity.RoleClient, entity.RoleAdmin)
	jobs.POST("", jobHandler.CreateJob, authMiddleware.Authenticate, clientOnly)
	jobs.GET("/:id/proposals", jobHandler.ListProposals, authMiddleware.Authenticate, clientOnly)
	jobs.POST("/:id/proposals/:proposalId/accept", jobHandler.AcceptProposal, authMiddleware.Authenticate, clientOnly)
}

func SetupProjectRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	projectHandler := handler.GetProjectHandler()

	projects := api.Group("/projects")
	projects.Use(authMiddleware.Authenticate)

	projects.GET("/active-projects", projectHandler.ActiveProjects)
	projects.POST("/submit", projectHandler.SubmitWork)
	projects.GET("/:jobId/submissions", projectHandler.ListSubmissions)
}
