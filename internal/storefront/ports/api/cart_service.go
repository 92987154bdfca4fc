package api

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// CartUseCase определяет основной порт для операций с корзиной.
// Идентификатор пользователя передается явным аргументом: use case не
// полагается на неявную идентичность из контекста запроса.
type CartUseCase interface {
	AddToCart(ctx context.Context, userID, productID string, quantity int32) (*entities.UserView, error)

	// RemoveFromCart при quantity > 0 уменьшает количество позиции,
	// при quantity <= 0 удаляет позицию целиком.
	RemoveFromCart(ctx context.Context, userID, productID string, quantity int32) (*entities.UserView, error)

	GetCart(ctx context.Context, userID string) ([]entities.ResolvedCartLine, error)
}
