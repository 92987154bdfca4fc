// Package favourites содержит HTTP обработчики избранного.
package favourites

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
	LogHandlerAddToFavourites      = "favourites handler: add to favourites"
	LogHandlerRemoveFromFavourites = "favourites handler: remove from favourites"
	LogHandlerGetFavourites        = "favourites handler: get favourites"

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

// Сопоставление ошибок домена избранного со статусами HTTP.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrEmptyUserID):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Handler содержит HTTP обработчики избранного.
type Handler struct {
	favouritesUseCase api.FavouritesUseCase
}

// NewHandler создает новый экземпляр обработчика избранного.
func NewHandler(favouritesUseCase api.FavouritesUseCase) *Handler {
	return &Handler{
		favouritesUseCase: favouritesUseCase,
	}
}

// AddToFavourites обрабатывает запрос на добавление товара в избранное.
func (h *Handler) AddToFavourites(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddToFavourites)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.FavouriteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.ProductID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "product_id is required")
	}

	view, err := h.favouritesUseCase.AddToFavourites(requestCtx, userID, req.ProductID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserViewResponse(view)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RemoveFromFavourites обрабатывает запрос на удаление товара из избранного.
func (h *Handler) RemoveFromFavourites(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRemoveFromFavourites)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.FavouriteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.ProductID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "product_id is required")
	}

	view, err := h.favouritesUseCase.RemoveFromFavourites(requestCtx, userID, req.ProductID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserViewResponse(view)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetFavourites обрабатывает запрос на получение избранных товаров.
func (h *Handler) GetFavourites(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetFavourites)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	products, err := h.favouritesUseCase.GetFavourites(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"favourites": products,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
