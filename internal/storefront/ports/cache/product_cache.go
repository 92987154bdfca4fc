// Package cache определяет интерфейсы для кэширования.
package cache

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// ProductCache определяет интерфейс кэша разрешенных товаров.
// Промах кэша возвращается как (nil, nil).
type ProductCache interface {
	Get(ctx context.Context, productID string) (*entities.Product, error)

	Set(ctx context.Context, product *entities.Product) error

	Close() error
}
