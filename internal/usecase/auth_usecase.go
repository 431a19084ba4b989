package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/infrastructure/auth"
	"gighub/pkg/errors"
	"gighub/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       repository.Transactor
	tokens   TokenService
	hasher   PasswordHasher
}

func NewAuthUseCase(userRepo repository.UserRepository, tx repository.Transactor, tokens TokenService, hasher PasswordHasher) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tx:       tx,
		tokens:   tokens,
		hasher:   hasher,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type LoginResult struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	UserType     entity.Role  `json:"userType"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

const emailInUse = "Email is already in use."

// Register creates a freelancer account.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if blank(input.FirstName, input.LastName, input.Email, input.Password) {
		return nil, errors.Validation("Please provide all the information to register")
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Something went wrong while registering the user", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        entity.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         entity.RoleFreelancer,
		Profile:      entity.DefaultProfile(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.userRepo.GetByEmail(ctx, user.Email); err == nil {
			return errors.Conflict(emailInUse)
		} else if !errors.IsNotFound(err) {
			return err
		}
		return uc.userRepo.Create(ctx, user)
	})
	if errors.Is(err, errors.CodeConflict) {
		return nil, errors.Conflict(emailInUse)
	}
	if err != nil {
		return nil, errors.Wrap(err, "Something went wrong while registering the user")
	}

	logger.Info("Registered freelancer %s", user.ID)
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if blank(email, password) {
		return nil, errors.Validation("Email and password are required. Please provide both.")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if errors.IsNotFound(err) {
		return nil, errors.NotFoundMessage("User does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load user")
	}

	if !uc.hasher.Compare(user.PasswordHash, password) {
		return nil, errors.BadRequest("Incorrect email or password", nil)
	}

	accessToken, err := uc.tokens.GenerateAccessToken(subjectOf(user))
	if err != nil {
		return nil, errors.Internal("Something went wrong while generating tokens", err)
	}
	refreshToken, err := uc.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Internal("Something went wrong while generating tokens", err)
	}

	user.RefreshToken = refreshToken
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to store refresh token")
	}

	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserType:     user.Role,
	}, nil
}

// Logout forgets the stored refresh token so it can no longer be exchanged.
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "Failed to load user")
	}

	user.RefreshToken = ""
	user.UpdatedAt = time.Now()
	return errors.Wrap(uc.userRepo.Update(ctx, user), "Failed to log out")
}

// RefreshAccessToken issues a new access token and hands back the refresh
// token unchanged.
func (uc *AuthUseCase) RefreshAccessToken(ctx context.Context, refreshToken, userType string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.Unauthorized("Unauthorized Request", nil)
	}

	claims, err := uc.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid Token Provided - Please login again", err)
	}

	if !entity.Role(userType).Valid() {
		return nil, errors.Unauthorized("Unauthorized Request", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if errors.IsNotFound(err) {
		return nil, errors.Unauthorized("Invalid Token Provided - Please login again", err)
	}
	if err != nil {
		return nil, errors.Wrap(err, "Cannot refresh access Token")
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, errors.Unauthorized("Refresh Token is Expired or used", nil)
	}

	accessToken, err := uc.tokens.GenerateAccessToken(subjectOf(user))
	if err != nil {
		return nil, errors.Internal("Cannot refresh access Token", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: user.RefreshToken}, nil
}

// Authenticate resolves an access token to its user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, errors.Unauthorized("Unauthorized: No token provided", nil)
	}

	claims, err := uc.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if errors.IsNotFound(err) {
		return nil, errors.Unauthorized("Unauthorized: User not found", err)
	}
	if err != nil {
		return nil, errors.Internal("Internal server error during authentication", err)
	}

	return user, nil
}

func subjectOf(user *entity.User) auth.Subject {
	return auth.Subject{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
