package handler

import (
	"time"

	"gighub/internal/usecase"
)

// CookieConfig controls the lifetime of the auth cookies set on login and
// refresh.
type CookieConfig struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	profileHandler  *ProfileHandler
	jobHandler      *JobHandler
	projectHandler  *ProjectHandler
	paymentHandler  *PaymentHandler
	earningsHandler *EarningsHandler
	reviewHandler   *ReviewHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	jobUseCase *usecase.JobUseCase,
	projectUseCase *usecase.ProjectUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	earningsUseCase *usecase.EarningsUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	cookies CookieConfig,
) {
	authHandler = NewAuthHandler(authUseCase, cookies)
	userHandler = NewUserHandler(userUseCase)
	profileHandler = NewProfileHandler(userUseCase)
	jobHandler = NewJobHandler(jobUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	earningsHandler = NewEarningsHandler(earningsUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetJobHandler() *JobHandler {
	return jobHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetEarningsHandler() *EarningsHandler {
	return earningsHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
