package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"
)

// CartRepository реализует интерфейс repositories.CartRepository для работы с Postgres.
// Мутации выполняются одним серверным выражением или одной короткой
// транзакцией, поэтому параллельные запросы одного пользователя
// сериализуются базой данных и потерянных обновлений не возникает.
type CartRepository struct {
	pool PgxPoolInterface
}

// NewCartRepository создает новый экземпляр репозитория корзины.
func NewCartRepository(pool PgxPoolInterface) repositories.CartRepository {
	return &CartRepository{pool: pool}
}

// AddItem добавляет товар в корзину, суммируя количество с существующей позицией.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "AddItem"))

	query := `
        INSERT INTO cart_items (user_id, product_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
    `

	_, err := r.pool.Exec(ctx, query, userID, productID, quantity)
	if err != nil {
		log.Error(ctx, "error adding cart item", zap.Error(err))
		return fmt.Errorf("error adding cart item: %w", err)
	}

	log.Debug(ctx, "cart item added",
		zap.String("userID", userID),
		zap.String("productID", productID),
		zap.Int32("quantity", quantity))
	return nil
}

// RemoveItem уменьшает количество позиции или удаляет ее целиком.
// При quantity <= 0 позиция удаляется безусловно. Иначе позиция удаляется,
// когда списываемое количество покрывает остаток, и уменьшается в противном
// случае; оба выражения защищены условием по quantity, так что ограничение
// quantity > 0 в схеме не нарушается.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string, quantity int32) error {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "RemoveItem"))

	if quantity <= 0 {
		result, err := r.pool.Exec(ctx,
			`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`,
			userID, productID,
		)
		if err != nil {
			log.Error(ctx, "error deleting cart item", zap.Error(err))
			return fmt.Errorf("error deleting cart item: %w", err)
		}
		if result.RowsAffected() == 0 {
			log.Debug(ctx, "cart item not found", zap.String("productID", productID))
			return entities.ErrCartLineNotFound
		}
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	deleted, err := tx.Exec(ctx,
		`DELETE FROM cart_items
         WHERE user_id = $1 AND product_id = $2 AND quantity <= $3`,
		userID, productID, quantity,
	)
	if err != nil {
		log.Error(ctx, "error deleting exhausted cart item", zap.Error(err))
		return fmt.Errorf("error deleting exhausted cart item: %w", err)
	}

	if deleted.RowsAffected() == 0 {
		updated, err := tx.Exec(ctx,
			`UPDATE cart_items
             SET quantity = quantity - $3, updated_at = NOW()
             WHERE user_id = $1 AND product_id = $2 AND quantity > $3`,
			userID, productID, quantity,
		)
		if err != nil {
			log.Error(ctx, "error decrementing cart item", zap.Error(err))
			return fmt.Errorf("error decrementing cart item: %w", err)
		}
		if updated.RowsAffected() == 0 {
			log.Debug(ctx, "cart item not found", zap.String("productID", productID))
			return entities.ErrCartLineNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing cart removal", zap.Error(err))
		return fmt.Errorf("error committing cart removal: %w", err)
	}

	log.Debug(ctx, "cart item removed",
		zap.String("productID", productID),
		zap.Int32("quantity", quantity))
	return nil
}

// ListItems возвращает все позиции корзины пользователя.
func (r *CartRepository) ListItems(ctx context.Context, userID string) ([]entities.CartLine, error) {
	log := logger.Log(ctx).With(zap.String("repository", "cart"), zap.String("method", "ListItems"))

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, quantity, created_at, updated_at
         FROM cart_items
         WHERE user_id = $1
         ORDER BY created_at`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "error listing cart items", zap.Error(err))
		return nil, fmt.Errorf("error listing cart items: %w", err)
	}
	defer rows.Close()

	lines := make([]entities.CartLine, 0)
	for rows.Next() {
		var line entities.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt); err != nil {
			log.Error(ctx, "error scanning cart item", zap.Error(err))
			return nil, fmt.Errorf("error scanning cart item: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating cart items", zap.Error(err))
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return lines, nil
}
