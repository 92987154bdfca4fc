package orderrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostorefront/internal/storefront/adapters/postgres"
	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/pkg/logger"
)

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	userID := "user-123"
	orderID := "order-1"
	now := time.Now()

	inputOrder := &entities.Order{
		UserID: userID,
		Items: []entities.OrderItem{
			{ProductID: "product-a", Quantity: 2},
			{ProductID: "product-b", Quantity: 1},
		},
		TotalCents: 22490,
		Address:    "221B Baker Street",
	}

	t.Run("Заказ, позиции и очистка корзины в одной транзакции", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders .+ RETURNING id, created_at").
			WithArgs(userID, int64(22490), "221B Baker Street").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(orderID, now))
		mock.ExpectExec("INSERT INTO order_items .+").
			WithArgs(orderID, "product-a", int32(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO order_items .+").
			WithArgs(orderID, "product-b", int32(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id = .+").
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectCommit()
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, inputOrder)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, orderID, created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.Equal(t, int64(22490), created.TotalCents)
		assert.Len(t, created.Items, 2)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повторяющиеся позиции одного товара складываются в одну строку", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		duplicateOrder := &entities.Order{
			UserID: userID,
			Items: []entities.OrderItem{
				{ProductID: "product-a", Quantity: 2},
				{ProductID: "product-b", Quantity: 1},
				{ProductID: "product-a", Quantity: 3},
			},
			TotalCents: 49340,
			Address:    "221B Baker Street",
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders .+ RETURNING id, created_at").
			WithArgs(userID, int64(49340), "221B Baker Street").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(orderID, now))
		mock.ExpectExec("INSERT INTO order_items .+").
			WithArgs(orderID, "product-a", int32(5)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO order_items .+").
			WithArgs(orderID, "product-b", int32(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id = .+").
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectCommit()
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, duplicateOrder)

		require.NoError(t, err)
		require.NotNil(t, created)
		require.Len(t, created.Items, 2)
		assert.Equal(t, "product-a", created.Items[0].ProductID)
		assert.Equal(t, int32(5), created.Items[0].Quantity)
		assert.Equal(t, "product-b", created.Items[1].ProductID)
		assert.Equal(t, int32(1), created.Items[1].Quantity)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Сбой на позиции отменяет всю транзакцию", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders .+ RETURNING id, created_at").
			WithArgs(userID, int64(22490), "221B Baker Street").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(orderID, now))
		mock.ExpectExec("INSERT INTO order_items .+").
			WithArgs(orderID, "product-a", int32(2)).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, inputOrder)

		require.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "error creating order item")

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании заказа", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders .+ RETURNING id, created_at").
			WithArgs(userID, int64(22490), "221B Baker Street").
			WillReturnError(errors.New("database connection error"))
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, inputOrder)

		require.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "error creating order")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
