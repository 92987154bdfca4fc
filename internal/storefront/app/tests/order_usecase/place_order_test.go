package orderusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gostorefront/internal/storefront/app"
	"gostorefront/internal/storefront/domain/entities"
)

func TestPlaceOrder(t *testing.T) {
	userID := "user-123"
	address := "221B Baker Street"

	catalog := []entities.Product{
		{ID: "product-a", Title: "Keyboard", PriceCents: 8950},
		{ID: "product-b", Title: "Mouse", PriceCents: 4590},
	}

	items := []entities.OrderItem{
		{ProductID: "product-a", Quantity: 2},
		{ProductID: "product-b", Quantity: 1},
	}

	// 2*8950 + 1*4590
	correctTotal := int64(22490)

	t.Run("Успешное оформление заказа", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		productRepo := new(mockProductRepository)

		productRepo.On("GetByIDs", mock.Anything, []string{"product-a", "product-b"}).
			Return(catalog, nil).Once()
		orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *entities.Order) bool {
			return o.UserID == userID && o.TotalCents == correctTotal && o.Address == address && len(o.Items) == 2
		})).Return(&entities.Order{
			ID:         "order-1",
			UserID:     userID,
			Items:      items,
			TotalCents: correctTotal,
			Address:    address,
			CreatedAt:  time.Now(),
		}, nil).Once()

		orderUseCase := app.NewOrderUseCase(orderRepo, productRepo)

		order, err := orderUseCase.PlaceOrder(context.Background(), userID, items, address, correctTotal)

		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, "order-1", order.ID)
		assert.Equal(t, correctTotal, order.TotalCents)

		orderRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("Ошибка - клиентская сумма не совпадает с каталогом", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		productRepo := new(mockProductRepository)

		productRepo.On("GetByIDs", mock.Anything, []string{"product-a", "product-b"}).
			Return(catalog, nil).Once()

		orderUseCase := app.NewOrderUseCase(orderRepo, productRepo)

		order, err := orderUseCase.PlaceOrder(context.Background(), userID, items, address, 100)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrTotalMismatch)
		assert.Nil(t, order)

		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Ошибка - заказ без позиций", func(t *testing.T) {
		orderUseCase := app.NewOrderUseCase(new(mockOrderRepository), new(mockProductRepository))

		order, err := orderUseCase.PlaceOrder(context.Background(), userID, nil, address, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyOrder)
		assert.Nil(t, order)
	})

	t.Run("Ошибка - пустой адрес доставки", func(t *testing.T) {
		orderUseCase := app.NewOrderUseCase(new(mockOrderRepository), new(mockProductRepository))

		order, err := orderUseCase.PlaceOrder(context.Background(), userID, items, "", correctTotal)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyAddress)
		assert.Nil(t, order)
	})

	t.Run("Ошибка - неположительное количество в позиции", func(t *testing.T) {
		orderUseCase := app.NewOrderUseCase(new(mockOrderRepository), new(mockProductRepository))

		badItems := []entities.OrderItem{{ProductID: "product-a", Quantity: 0}}
		order, err := orderUseCase.PlaceOrder(context.Background(), userID, badItems, address, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
		assert.Nil(t, order)
	})

	t.Run("Ошибка - товар заказа отсутствует в каталоге", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		productRepo := new(mockProductRepository)

		// Каталог вернул только один из двух запрошенных товаров.
		productRepo.On("GetByIDs", mock.Anything, []string{"product-a", "product-b"}).
			Return(catalog[:1], nil).Once()

		orderUseCase := app.NewOrderUseCase(orderRepo, productRepo)

		order, err := orderUseCase.PlaceOrder(context.Background(), userID, items, address, correctTotal)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		assert.Nil(t, order)
	})

	t.Run("Ошибка - пустой идентификатор пользователя", func(t *testing.T) {
		orderUseCase := app.NewOrderUseCase(new(mockOrderRepository), new(mockProductRepository))

		order, err := orderUseCase.PlaceOrder(context.Background(), "", items, address, correctTotal)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyUserID)
		assert.Nil(t, order)
	})
}

func TestListOrders(t *testing.T) {
	userID := "user-123"

	t.Run("Успешное получение заказов", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)

		expected := []*entities.Order{
			{ID: "order-2", UserID: userID, TotalCents: 4590, CreatedAt: time.Now()},
			{ID: "order-1", UserID: userID, TotalCents: 8950, CreatedAt: time.Now().Add(-time.Hour)},
		}
		orderRepo.On("ListByUserID", mock.Anything, userID).Return(expected, nil).Once()

		orderUseCase := app.NewOrderUseCase(orderRepo, new(mockProductRepository))

		orders, err := orderUseCase.ListOrders(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "order-2", orders[0].ID)

		orderRepo.AssertExpectations(t)
	})

	t.Run("Ошибка - пустой идентификатор пользователя", func(t *testing.T) {
		orderUseCase := app.NewOrderUseCase(new(mockOrderRepository), new(mockProductRepository))

		orders, err := orderUseCase.ListOrders(context.Background(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyUserID)
		assert.Nil(t, orders)
	})
}
