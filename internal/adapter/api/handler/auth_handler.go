package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gighub/internal/adapter/api/middleware"
	"gighub/internal/usecase"
	"gighub/pkg/response"
)

const refreshTokenCookie = "refreshToken"

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cookies     CookieConfig
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookies:     cookies,
	}
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	UserType     string `json:"userType"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	_, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Wrapped(c, http.StatusCreated, nil, "User registered successfully.")
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(authCookie(middleware.AccessTokenCookie, result.AccessToken, h.cookies.AccessTTL))
	c.SetCookie(authCookie(refreshTokenCookie, result.RefreshToken, h.cookies.RefreshTTL))

	return response.Wrapped(c, http.StatusCreated, result, "User logged in successfully.")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	uid := c.Get(middleware.ContextUIDKey).(string)

	if err := h.authUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(authCookie(middleware.AccessTokenCookie, "", -1))
	c.SetCookie(authCookie(refreshTokenCookie, "", -1))

	return response.Wrapped(c, http.StatusOK, nil, "User logged out successfully.")
}

// RefreshToken accepts the refresh token from its cookie or the body.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	token := req.RefreshToken
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		token = cookie.Value
	}

	pair, err := h.authUseCase.RefreshAccessToken(c.Request().Context(), token, req.UserType)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(authCookie(middleware.AccessTokenCookie, pair.AccessToken, h.cookies.AccessTTL))

	return response.Wrapped(c, http.StatusOK, pair, "Access token refreshed successfully.")
}

// authCookie builds an HttpOnly cross-site cookie. A negative ttl expires it.
func authCookie(name, value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
		cookie.Expires = time.Now().Add(ttl)
	}
	return cookie
}
