package repositories

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// OrderRepository определяет интерфейс для операций с заказами.
type OrderRepository interface {
	// Create сохраняет заказ и очищает корзину пользователя в одной
	// транзакции.
	Create(ctx context.Context, order *entities.Order) (*entities.Order, error)

	ListByUserID(ctx context.Context, userID string) ([]*entities.Order, error)
}
