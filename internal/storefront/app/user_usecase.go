package app

import (
	"context"
	"fmt"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/api"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodGetUserProfile = "GetUserProfile"

	msgGettingUserProfile   = "getting user profile"
	msgEmptyUserIDProvided  = "empty user ID provided"
	msgErrGetUserProfile    = "failed to get user profile"
	msgUserProfileRetrieved = "user profile retrieved successfully"

	errCtxEmptyUserID       = "empty user ID"
	errCtxGetUserForProfile = "getting user by ID"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользовательских операций.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
	}
}

// GetUserProfile возвращает профиль пользователя по его идентификатору.
func (u *UserUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetUserProfile),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGettingUserProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrGetUserProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGetUserForProfile, err)
	}

	log.Info(ctx, msgUserProfileRetrieved)
	return user, nil
}
