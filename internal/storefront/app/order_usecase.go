package app

import (
	"context"
	"fmt"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/api"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodPlaceOrder = "PlaceOrder"
	methodListOrders = "ListOrders"

	msgPlacingOrder       = "placing order"
	msgEmptyOrderItems    = "order has no items"
	msgEmptyOrderAddress  = "order has no delivery address"
	msgInvalidItemQty     = "order item has non-positive quantity"
	msgErrResolvingOrder  = "failed to resolve order products"
	msgOrderTotalMismatch = "client total does not match the catalog total"
	msgErrCreateOrder     = "failed to create order"
	msgOrderPlaced        = "order placed successfully"
	msgListingOrders      = "listing orders"
	msgErrListOrders      = "failed to list orders"
	msgOrdersRetrieved    = "orders retrieved"

	errCtxValidatingOrder   = "validating order"
	errCtxResolvingOrder    = "resolving order products"
	errCtxVerifyingTotal    = "verifying order total"
	errCtxCreatingOrder     = "creating order"
	errCtxListingUserOrders = "listing orders"
)

// OrderUseCaseImpl реализует интерфейс OrderUseCase.
type OrderUseCaseImpl struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewOrderUseCase создает новый экземпляр сервиса заказов.
func NewOrderUseCase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
) api.OrderUseCase {
	return &OrderUseCaseImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// PlaceOrder оформляет заказ. Итоговая сумма пересчитывается по каталогу:
// клиентская сумма принимается только при точном совпадении. Сохранение
// заказа и очистка корзины выполняются в одной транзакции хранилища.
func (o *OrderUseCaseImpl) PlaceOrder(ctx context.Context, userID string, items []entities.OrderItem, address string, totalCents int64) (*entities.Order, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodPlaceOrder),
		zap.String("userID", userID),
		zap.Int("items", len(items)),
	)
	log.Debug(ctx, msgPlacingOrder)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}
	if len(items) == 0 {
		log.Debug(ctx, msgEmptyOrderItems)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingOrder, entities.ErrEmptyOrder)
	}
	if address == "" {
		log.Debug(ctx, msgEmptyOrderAddress)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingOrder, entities.ErrEmptyAddress)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			log.Debug(ctx, msgInvalidItemQty, zap.String("productID", item.ProductID))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingOrder, entities.ErrInvalidQuantity)
		}
	}

	computedTotal, err := o.computeTotal(ctx, items)
	if err != nil {
		log.Error(ctx, msgErrResolvingOrder, zap.Error(err))
		return nil, err
	}

	if computedTotal != totalCents {
		log.Debug(ctx, msgOrderTotalMismatch,
			zap.Int64("clientTotal", totalCents),
			zap.Int64("computedTotal", computedTotal),
		)
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingTotal, entities.ErrTotalMismatch)
	}

	order := &entities.Order{
		UserID:     userID,
		Items:      items,
		TotalCents: computedTotal,
		Address:    address,
	}

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		log.Error(ctx, msgErrCreateOrder, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingOrder, err)
	}

	log.Info(ctx, msgOrderPlaced,
		zap.String("orderID", created.ID),
		zap.Int64("totalCents", created.TotalCents),
	)
	return created, nil
}

// ListOrders возвращает заказы пользователя от новых к старым.
func (o *OrderUseCaseImpl) ListOrders(ctx context.Context, userID string) ([]*entities.Order, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodListOrders),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgListingOrders)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	orders, err := o.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListOrders, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUserOrders, err)
	}

	log.Info(ctx, msgOrdersRetrieved, zap.Int("count", len(orders)))
	return orders, nil
}

// computeTotal пересчитывает сумму заказа по актуальным ценам каталога.
// Товар, отсутствующий в каталоге, делает заказ невалидным.
func (o *OrderUseCaseImpl) computeTotal(ctx context.Context, items []entities.OrderItem) (int64, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := o.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxResolvingOrder, err)
	}

	priceByID := make(map[string]int64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.PriceCents
	}

	var total int64
	for _, item := range items {
		price, ok := priceByID[item.ProductID]
		if !ok {
			return 0, fmt.Errorf("%s: %w", errCtxResolvingOrder, entities.ErrProductNotFound)
		}
		total += price * int64(item.Quantity)
	}

	return total, nil
}
