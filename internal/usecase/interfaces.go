package usecase

import (
	"gighub/internal/infrastructure/auth"
)

type TokenService interface {
	GenerateAccessToken(sub auth.Subject) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	VerifyAccessToken(token string) (*auth.Claims, error)
	VerifyRefreshToken(token string) (*auth.Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
