package api

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// OrderUseCase определяет основной порт для операций с заказами.
type OrderUseCase interface {
	PlaceOrder(ctx context.Context, userID string, items []entities.OrderItem, address string, totalCents int64) (*entities.Order, error)

	ListOrders(ctx context.Context, userID string) ([]*entities.Order, error)
}
