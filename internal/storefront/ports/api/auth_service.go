// Package api определяет основные порты приложения.
package api

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, username, password, img string) (*services.TokenPair, *entities.User, error)

	Login(ctx context.Context, email, password string) (*services.TokenPair, *entities.User, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, refreshToken string) error
}
