package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gighub/internal/domain/entity"
	"gighub/internal/usecase"
	"gighub/pkg/errors"
	"gighub/pkg/response"
)

const (
	ContextUserKey = "user"
	ContextUIDKey  = "uid"

	AccessTokenCookie = "accessToken"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate resolves the access token from the cookie or the bearer header
// and stores the user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authUseCase.Authenticate(c.Request().Context(), tokenFromRequest(c))
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUIDKey, user.ID)

		return next(c)
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(ContextUserKey).(*entity.User)
	if !ok || user == nil {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	return user, nil
}
