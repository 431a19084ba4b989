package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetMe(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	user, err := h.userUseCase.GetMe(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Wrapped(c, http.StatusOK, user, "User fetched successfully.")
}
