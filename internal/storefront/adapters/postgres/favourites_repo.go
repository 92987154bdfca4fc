package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"
)

// FavouritesRepository реализует интерфейс repositories.FavouritesRepository для работы с Postgres.
type FavouritesRepository struct {
	pool PgxPoolInterface
}

// NewFavouritesRepository создает новый экземпляр репозитория избранного.
func NewFavouritesRepository(pool PgxPoolInterface) repositories.FavouritesRepository {
	return &FavouritesRepository{pool: pool}
}

// Add добавляет товар в избранное. Повторное добавление того же товара -
// no-op: строка не записывается и возвращается false.
func (r *FavouritesRepository) Add(ctx context.Context, userID, productID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "favourites"), zap.String("method", "Add"))

	query := `
        INSERT INTO favourites (user_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, product_id) DO NOTHING
    `

	result, err := r.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		log.Error(ctx, "error adding favourite", zap.Error(err))
		return false, fmt.Errorf("error adding favourite: %w", err)
	}

	added := result.RowsAffected() > 0
	log.Debug(ctx, "favourite add processed",
		zap.String("productID", productID),
		zap.Bool("added", added))
	return added, nil
}

// Remove удаляет товар из избранного. Запись выполняется безусловно:
// отсутствие товара в избранном ошибкой не считается.
func (r *FavouritesRepository) Remove(ctx context.Context, userID, productID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "favourites"), zap.String("method", "Remove"))

	query := `
        DELETE FROM favourites
        WHERE user_id = $1 AND product_id = $2
    `

	if _, err := r.pool.Exec(ctx, query, userID, productID); err != nil {
		log.Error(ctx, "error removing favourite", zap.Error(err))
		return fmt.Errorf("error removing favourite: %w", err)
	}

	return nil
}

// List возвращает идентификаторы избранных товаров пользователя.
func (r *FavouritesRepository) List(ctx context.Context, userID string) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "favourites"), zap.String("method", "List"))

	rows, err := r.pool.Query(ctx,
		`SELECT product_id
         FROM favourites
         WHERE user_id = $1
         ORDER BY created_at`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "error listing favourites", zap.Error(err))
		return nil, fmt.Errorf("error listing favourites: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Error(ctx, "error scanning favourite", zap.Error(err))
			return nil, fmt.Errorf("error scanning favourite: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating favourites", zap.Error(err))
		return nil, fmt.Errorf("error iterating favourites: %w", err)
	}

	return ids, nil
}
