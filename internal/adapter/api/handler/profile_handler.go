package handler

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/response"
)

type ProfileHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewProfileHandler(userUseCase *usecase.UserUseCase) *ProfileHandler {
	return &ProfileHandler{
		userUseCase: userUseCase,
	}
}

type profileRequest struct {
	Bio       *string  `json:"bio" validate:"omitempty,max=1000"`
	Skills    []string `json:"skills" validate:"omitempty,dive,required"`
	Portfolio []string `json:"portfolio" validate:"omitempty,dive,url"`
	Avatar    *string  `json:"avatar" validate:"omitempty,url"`
}

func (r profileRequest) input() usecase.ProfileInput {
	return usecase.ProfileInput{
		Bio:       r.Bio,
		Skills:    r.Skills,
		Portfolio: r.Portfolio,
		Avatar:    r.Avatar,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"profile": profile,
	})
}

func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	profile, err := h.userUseCase.CreateProfile(c.Request().Context(), uid, req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Profile created successfully.",
		"profile": profile,
	})
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get(middleware.ContextUIDKey).(string)
	profile, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"message": "Profile updated successfully.",
		"profile": profile,
	})
}

func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	if err := h.userUseCase.ClearProfile(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"message": "Profile deleted successfully.",
	})
}
