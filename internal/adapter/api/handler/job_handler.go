package handler

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/errors"
	"gighub/pkg/response"
	"gighub/pkg/utils"
)

type JobHandler struct {
	jobUseCase *usecase.JobUseCase
}

func NewJobHandler(jobUseCase *usecase.JobUseCase) *JobHandler {
	return &JobHandler{
		jobUseCase: jobUseCase,
	}
}

type submitProposalRequest struct {
	JobID          string  `json:"jobId" validate:"required"`
	CoverLetter    string  `json:"coverLetter" validate:"required"`
	ExpectedBudget float64 `json:"expectedBudget" validate:"required,gt=0"`
}

type createJobRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"required"`
	SkillsRequired []string `json:"skillsRequired" validate:"required,min=1,dive,required"`
	Budget         float64  `json:"budget" validate:"required,gt=0"`
	Duration       string   `json:"duration" validate:"required"`
}

func browseInput(c echo.Context) (usecase.BrowseJobsInput, error) {
	input := usecase.BrowseJobsInput{
		Skills:   utils.SplitCSV(c.QueryParam("skills")),
		Duration: utils.QueryString(c, "duration"),
	}

	budget, ok, err := utils.QueryFloat(c, "budget")
	if err != nil {
		return input, errors.BadRequest("budget must be a number", err)
	}
	if ok {
		input.MaxBudget = &budget
	}
	return input, nil
}

func (h *JobHandler) BrowseJobs(c echo.Context) error {
	input, err := browseInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	jobs, err := h.jobUseCase.BrowseJobs(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) SearchJobs(c echo.Context) error {
	input, err := browseInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	jobs, err := h.jobUseCase.SearchJobs(c.Request().Context(), usecase.SearchJobsInput{
		BrowseJobsInput: input,
		Keyword:         utils.QueryString(c, "keyword"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) SubmitProposal(c echo.Context) error {
	var req submitProposalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	proposal, err := h.jobUseCase.SubmitProposal(c.Request().Context(), uid, usecase.SubmitProposalInput{
		JobID:          req.JobID,
		CoverLetter:    req.CoverLetter,
		ExpectedBudget: req.ExpectedBudget,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"success":  true,
		"message":  "Proposal submitted successfully.",
		"proposal": proposal,
	})
}

func (h *JobHandler) CreateJob(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	job, err := h.jobUseCase.CreateJob(c.Request().Context(), user, usecase.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Budget:         req.Budget,
		Duration:       req.Duration,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"success": true,
		"job":     job,
	})
}

func (h *JobHandler) ListProposals(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	proposals, err := h.jobUseCase.ListProposals(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success":   true,
		"proposals": proposals,
	})
}

func (h *JobHandler) AcceptProposal(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	job, proposal, err := h.jobUseCase.AcceptProposal(c.Request().Context(), uid, c.Param("id"), c.Param("proposalId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success":  true,
		"job":      job,
		"proposal": proposal,
	})
}
