package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/internal/domain/service"
	"gighub/pkg/errors"
	"gighub/pkg/logger"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	fileService service.FileUploadService
}

// NewUserUseCase builds the profile use case. fileService may be nil, in
// which case avatar uploads are rejected.
func NewUserUseCase(userRepo repository.UserRepository, fileService service.FileUploadService) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		fileService: fileService,
	}
}

// ProfileInput carries optional profile fields. A nil field is left unchanged.
type ProfileInput struct {
	Bio       *string
	Skills    []string
	Portfolio []string
	Avatar    *string
}

func (uc *UserUseCase) GetMe(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load user")
	}
	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	user, err := uc.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &user.Profile, nil
}

// CreateProfile fills an empty profile. Missing fields become empty values and
// the avatar falls back to the current one.
func (uc *UserUseCase) CreateProfile(ctx context.Context, userID string, input ProfileInput) (*entity.Profile, error) {
	user, err := uc.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Profile.HasContent() {
		return nil, errors.BadRequest("Profile already exists. Use the update endpoint instead.", nil)
	}

	profile := entity.Profile{
		Skills:    []string{},
		Portfolio: []string{},
		Avatar:    user.Profile.Avatar,
	}
	applyProfile(&profile, input)
	if profile.Avatar == "" {
		profile.Avatar = entity.DefaultAvatarURL
	}

	user.Profile = profile
	return uc.saveProfile(ctx, user)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*entity.Profile, error) {
	user, err := uc.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfile(&user.Profile, input)
	return uc.saveProfile(ctx, user)
}

// ClearProfile resets the profile to its defaults.
func (uc *UserUseCase) ClearProfile(ctx context.Context, userID string) error {
	user, err := uc.GetMe(ctx, userID)
	if err != nil {
		return err
	}

	user.Profile = entity.DefaultProfile()
	_, err = uc.saveProfile(ctx, user)
	return err
}

func (uc *UserUseCase) UploadAvatar(ctx context.Context, userID string, file io.Reader, contentType string) (*entity.Profile, error) {
	if uc.fileService == nil {
		return nil, errors.BadRequest("Avatar uploads are not enabled", nil)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.Validation("Avatar must be an image")
	}

	user, err := uc.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := uc.fileService.UploadFile(ctx, file, contentType, "avatars/"+userID)
	if err != nil {
		return nil, errors.Internal("Failed to upload avatar", err)
	}

	previous := user.UploadedAvatar
	user.Profile.Avatar = url
	user.UploadedAvatar = url
	profile, err := uc.saveProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	if previous != "" && previous != url {
		if err := uc.fileService.DeleteFile(ctx, previous); err != nil {
			logger.Warn("Failed to delete previous avatar for user %s: %v", userID, err)
		}
	}

	return profile, nil
}

func (uc *UserUseCase) saveProfile(ctx context.Context, user *entity.User) (*entity.Profile, error) {
	if user.Profile.Skills == nil {
		user.Profile.Skills = []string{}
	}
	if user.Profile.Portfolio == nil {
		user.Profile.Portfolio = []string{}
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to update user profile")
	}
	return &user.Profile, nil
}

func applyProfile(p *entity.Profile, input ProfileInput) {
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.Skills != nil {
		p.Skills = input.Skills
	}
	if input.Portfolio != nil {
		p.Portfolio = input.Portfolio
	}
	if input.Avatar != nil {
		p.Avatar = *input.Avatar
	}
}
