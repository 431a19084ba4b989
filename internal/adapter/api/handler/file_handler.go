package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/pkg/errors"
	"gighub/pkg/logger"
	"gighub/pkg/response"
)

const maxAvatarSize = 5 * 1024 * 1024

// UploadAvatar stores the multipart "avatar" image and points the profile at it.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received avatar: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > maxAvatarSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", maxAvatarSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	uid := c.Get(middleware.ContextUIDKey).(string)
	profile, err := h.userUseCase.UploadAvatar(c.Request().Context(), uid, src, file.Header.Get("Content-Type"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"message": "Avatar uploaded successfully.",
		"profile": profile,
	})
}
