package handler

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/response"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

type submitWorkRequest struct {
	JobID string   `json:"jobId" validate:"required"`
	Links []string `json:"links" validate:"omitempty,dive,url"`
	Notes string   `json:"notes"`
}

func (h *ProjectHandler) ActiveProjects(c echo.Context) error {
	projects, err := h.projectUseCase.ViewActiveProjects(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, projects)
}

func (h *ProjectHandler) SubmitWork(c echo.Context) error {
	var req submitWorkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	submission, job, err := h.projectUseCase.SubmitWork(c.Request().Context(), uid, usecase.SubmitWorkInput{
		JobID: req.JobID,
		Links: req.Links,
		Notes: req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message":    "Work submitted successfully.",
		"submission": submission,
		"updatedJob": job,
	})
}

func (h *ProjectHandler) ListSubmissions(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	submissions, err := h.projectUseCase.ListSubmissions(c.Request().Context(), uid, c.Param("jobId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success":     true,
		"submissions": submissions,
	})
}
