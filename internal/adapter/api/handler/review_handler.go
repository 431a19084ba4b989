package handler

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type provideFeedbackRequest struct {
	JobID    string `json:"jobId" validate:"required"`
	ClientID string `json:"clientId" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

type respondRequest struct {
	Response string `json:"response" validate:"required"`
}

func (h *ReviewHandler) ProvideFeedback(c echo.Context) error {
	var req provideFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	review, err := h.reviewUseCase.ProvideFeedback(c.Request().Context(), uid, usecase.ProvideFeedbackInput{
		JobID:    req.JobID,
		ClientID: req.ClientID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Feedback submitted successfully.",
		"review":  review,
	})
}

func (h *ReviewHandler) History(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	records, err := h.reviewUseCase.History(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, records)
}

func (h *ReviewHandler) Respond(c echo.Context) error {
	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	review, err := h.reviewUseCase.Respond(c.Request().Context(), uid, c.Param("id"), req.Response)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"message": "Response added successfully.",
		"review":  review,
	})
}
