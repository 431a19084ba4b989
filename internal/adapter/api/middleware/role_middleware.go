package middleware

import (
	"github.com/labstack/echo/v4"

	"gighub/internal/domain/entity"
	"gighub/pkg/errors"
	"gighub/pkg/response"
)

// RequireRoles rejects authenticated users whose role is not listed. It must
// run after Authenticate.
func RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return response.Error(c, err)
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return response.Error(c, errors.Forbidden("Insufficient privileges", nil))
		}
	}
}
