// Package cart содержит HTTP обработчики корзины.
package cart

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
	LogHandlerAddToCart      = "cart handler: add to cart"
	LogHandlerRemoveFromCart = "cart handler: remove from cart"
	LogHandlerGetCart        = "cart handler: get cart"

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

// Сопоставление ошибок домена корзины со статусами HTTP.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrCartLineNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrEmptyUserID):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Handler содержит HTTP обработчики корзины.
type Handler struct {
	cartUseCase api.CartUseCase
}

// NewHandler создает новый экземпляр обработчика корзины.
func NewHandler(cartUseCase api.CartUseCase) *Handler {
	return &Handler{
		cartUseCase: cartUseCase,
	}
}

// AddToCart обрабатывает запрос на добавление товара в корзину.
func (h *Handler) AddToCart(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddToCart)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.CartMutationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.ProductID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "product_id is required")
	}

	view, err := h.cartUseCase.AddToCart(requestCtx, userID, req.ProductID, req.AddQuantity())
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserViewResponse(view)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RemoveFromCart обрабатывает запрос на удаление товара из корзины.
// Запрос без количества удаляет позицию целиком.
func (h *Handler) RemoveFromCart(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRemoveFromCart)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.CartMutationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.ProductID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "product_id is required")
	}

	view, err := h.cartUseCase.RemoveFromCart(requestCtx, userID, req.ProductID, req.RemoveQuantity())
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserViewResponse(view)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetCart обрабатывает запрос на получение содержимого корзины.
func (h *Handler) GetCart(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetCart)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	lines, err := h.cartUseCase.GetCart(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"cart": lines,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
