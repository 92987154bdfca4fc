package repositories

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// ProductRepository определяет интерфейс чтения каталога товаров.
// Ядро витрины товары не изменяет.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Product, error)

	GetByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
}
