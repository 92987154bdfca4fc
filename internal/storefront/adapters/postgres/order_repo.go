package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"
)

// OrderRepository реализует интерфейс repositories.OrderRepository для работы с Postgres.
type OrderRepository struct {
	pool PgxPoolInterface
}

// NewOrderRepository создает новый экземпляр репозитория заказов.
func NewOrderRepository(pool PgxPoolInterface) repositories.OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create сохраняет заказ с позициями и очищает корзину пользователя.
// Все три шага выполняются в одной транзакции: заказ без очищенной корзины
// (или наоборот) невозможен. Повторяющиеся позиции одного товара
// складываются перед записью: в order_items товар хранится одной строкой.
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	log := logger.Log(ctx).With(zap.String("repository", "order"), zap.String("method", "Create"))

	items := mergeItems(order.Items)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created := entities.Order{
		UserID:     order.UserID,
		Items:      items,
		TotalCents: order.TotalCents,
		Address:    order.Address,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_cents, address)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		order.UserID, order.TotalCents, order.Address,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		log.Error(ctx, "error creating order", zap.Error(err))
		return nil, fmt.Errorf("error creating order: %w", err)
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity)
             VALUES ($1, $2, $3)`,
			created.ID, item.ProductID, item.Quantity,
		); err != nil {
			log.Error(ctx, "error creating order item", zap.Error(err))
			return nil, fmt.Errorf("error creating order item: %w", err)
		}
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1`,
		order.UserID,
	); err != nil {
		log.Error(ctx, "error clearing cart", zap.Error(err))
		return nil, fmt.Errorf("error clearing cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing order", zap.Error(err))
		return nil, fmt.Errorf("error committing order: %w", err)
	}

	log.Info(ctx, "order created",
		zap.String("orderID", created.ID),
		zap.String("userID", created.UserID),
		zap.Int64("totalCents", created.TotalCents))
	return &created, nil
}

// mergeItems складывает количества повторяющихся позиций одного товара,
// сохраняя порядок первого вхождения.
func mergeItems(items []entities.OrderItem) []entities.OrderItem {
	merged := make([]entities.OrderItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}

// ListByUserID возвращает заказы пользователя, новые первыми.
func (r *OrderRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Order, error) {
	log := logger.Log(ctx).With(zap.String("repository", "order"), zap.String("method", "ListByUserID"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, total_cents, address, created_at
         FROM orders
         WHERE user_id = $1
         ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "error listing orders", zap.Error(err))
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*entities.Order, 0)
	for rows.Next() {
		var order entities.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalCents, &order.Address, &order.CreatedAt); err != nil {
			log.Error(ctx, "error scanning order", zap.Error(err))
			return nil, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating orders", zap.Error(err))
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, order := range orders {
		items, err := r.listItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

// listItems возвращает позиции одного заказа.
func (r *OrderRepository) listItems(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "order"), zap.String("method", "listItems"))

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, quantity
         FROM order_items
         WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		log.Error(ctx, "error listing order items", zap.Error(err))
		return nil, fmt.Errorf("error listing order items: %w", err)
	}
	defer rows.Close()

	items := make([]entities.OrderItem, 0)
	for rows.Next() {
		var item entities.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			log.Error(ctx, "error scanning order item", zap.Error(err))
			return nil, fmt.Errorf("error scanning order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating order items", zap.Error(err))
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
