// Package orders содержит HTTP обработчики заказов.
package orders

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gostorefront/internal/storefront/adapters/http/middleware"
	"gostorefront/internal/storefront/app/dto"
	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/api"
	"gostorefront/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerPlaceOrder = "order handler: place order"
	LogHandlerListOrders = "order handler: list orders"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Сопоставление ошибок домена заказов со статусами HTTP.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrEmptyAddress),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrTotalMismatch):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrEmptyUserID):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Handler содержит HTTP обработчики заказов.
type Handler struct {
	orderUseCase api.OrderUseCase
}

// NewHandler создает новый экземпляр обработчика заказов.
func NewHandler(orderUseCase api.OrderUseCase) *Handler {
	return &Handler{
		orderUseCase: orderUseCase,
	}
}

// PlaceOrder обрабатывает запрос на оформление заказа.
func (h *Handler) PlaceOrder(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerPlaceOrder)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.PlaceOrderRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if len(req.Products) == 0 {
		return sendErrorResponse(ctx, http.StatusBadRequest, "products are required")
	}
	if req.Address == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "address is required")
	}

	items := make([]entities.OrderItem, 0, len(req.Products))
	for _, item := range req.Products {
		items = append(items, entities.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUseCase.PlaceOrder(requestCtx, userID, items, req.Address, req.TotalCents)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusCreated).JSON(order); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListOrders обрабатывает запрос на получение заказов пользователя.
func (h *Handler) ListOrders(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListOrders)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	orders, err := h.orderUseCase.ListOrders(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"orders": orders,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
