package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gostorefront/internal/storefront/app"
	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/domain/services"
)

func TestRegister(t *testing.T) {
	testEmail := "new@example.com"
	testUsername := "newuser"
	testPassword := "password123"
	testImg := "https://example.com/avatar.png"
	hashedPassword := "hashed_password"
	userID := "user-123"

	now := time.Now()
	accessExpiry := now.Add(15 * time.Minute)
	refreshExpiry := now.Add(24 * time.Hour)

	createdUser := &entities.User{
		ID:           userID,
		Email:        testEmail,
		Username:     testUsername,
		Img:          testImg,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tests := []struct {
		name        string
		email       string
		username    string
		password    string
		setupMocks  func(userRepo *mockUserRepository, tokenRepo *mockTokenRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService)
		expectedErr error
	}{
		{
			name:     "Успешная регистрация пользователя",
			email:    testEmail,
			username: testUsername,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, tokenRepo *mockTokenRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).
					Return(nil, entities.ErrUserNotFound).Once()
				passwordSvc.On("Hash", mock.Anything, testPassword).
					Return(hashedPassword, nil).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Email == testEmail && u.Username == testUsername && u.PasswordHash == hashedPassword
				})).Return(createdUser, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, userID, testUsername).
					Return("access-token", accessExpiry, nil).Once()
				tokenSvc.On("GenerateRefreshToken", mock.Anything, userID).
					Return("refresh-token", refreshExpiry, nil).Once()
				tokenRepo.On("StoreRefreshToken", mock.Anything, mock.MatchedBy(func(rt *services.RefreshToken) bool {
					return rt.UserID == userID && rt.Token == "refresh-token" && !rt.IsRevoked
				})).Return(nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:        "Ошибка - невалидный email",
			email:       "not-an-email",
			username:    testUsername,
			password:    testPassword,
			setupMocks:  func(*mockUserRepository, *mockTokenRepository, *mockPasswordService, *mockTokenService) {},
			expectedErr: entities.ErrInvalidEmail,
		},
		{
			name:        "Ошибка - пустое имя пользователя",
			email:       testEmail,
			username:    "",
			password:    testPassword,
			setupMocks:  func(*mockUserRepository, *mockTokenRepository, *mockPasswordService, *mockTokenService) {},
			expectedErr: entities.ErrEmptyUsername,
		},
		{
			name:        "Ошибка - слишком короткий пароль",
			email:       testEmail,
			username:    testUsername,
			password:    "short1",
			setupMocks:  func(*mockUserRepository, *mockTokenRepository, *mockPasswordService, *mockTokenService) {},
			expectedErr: entities.ErrPasswordTooShort,
		},
		{
			name:        "Ошибка - пароль без цифр",
			email:       testEmail,
			username:    testUsername,
			password:    "onlyletters",
			setupMocks:  func(*mockUserRepository, *mockTokenRepository, *mockPasswordService, *mockTokenService) {},
			expectedErr: entities.ErrPasswordTooWeak,
		},
		{
			name:     "Ошибка - email уже занят",
			email:    testEmail,
			username: testUsername,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, _ *mockTokenRepository, _ *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).
					Return(createdUser, nil).Once()
			},
			expectedErr: services.ErrEmailAlreadyExists,
		},
		{
			name:     "Ошибка - сбой базы данных при проверке email",
			email:    testEmail,
			username: testUsername,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, _ *mockTokenRepository, _ *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).
					Return(nil, errors.New("database connection error")).Once()
			},
			expectedErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			tokenRepo := new(mockTokenRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)

			tc.setupMocks(userRepo, tokenRepo, passwordSvc, tokenSvc)

			authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, passwordSvc, tokenSvc)

			ctx := context.Background()
			tokens, user, err := authUseCase.Register(ctx, tc.email, tc.username, tc.password, testImg)

			switch {
			case tc.expectedErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, tokens)
				assert.Nil(t, user)
			case tc.name == "Ошибка - сбой базы данных при проверке email":
				require.Error(t, err)
				assert.Nil(t, tokens)
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				require.NotNil(t, tokens)
				require.NotNil(t, user)
				assert.Equal(t, userID, user.ID)
				assert.Equal(t, testEmail, user.Email)
				assert.Equal(t, "access-token", tokens.AccessToken)
				assert.Equal(t, "refresh-token", tokens.RefreshToken)
				assert.Equal(t, accessExpiry, tokens.ExpiresAt)
			}

			userRepo.AssertExpectations(t)
			tokenRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}
