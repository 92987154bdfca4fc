package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"
)

// ProductRepository реализует интерфейс repositories.ProductRepository для работы с Postgres.
type ProductRepository struct {
	pool PgxPoolInterface
}

// NewProductRepository создает новый экземпляр репозитория каталога.
func NewProductRepository(pool PgxPoolInterface) repositories.ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetByID находит товар по ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "GetByID"))

	query := `
        SELECT id, title, description, image, price_cents, created_at
        FROM products
        WHERE id = $1
    `

	var product entities.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.Image,
		&product.PriceCents,
		&product.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found", zap.String("id", id))
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, "error finding product", zap.Error(err))
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return &product, nil
}

// GetByIDs возвращает товары с указанными идентификаторами.
// Отсутствующие идентификаторы молча пропускаются.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "GetByIDs"))

	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image, price_cents, created_at
         FROM products
         WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		log.Error(ctx, "error querying products", zap.Error(err))
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0, len(ids))
	for rows.Next() {
		var product entities.Product
		if err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Description,
			&product.Image,
			&product.PriceCents,
			&product.CreatedAt,
		); err != nil {
			log.Error(ctx, "error scanning product", zap.Error(err))
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating products", zap.Error(err))
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
