// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gostorefront/internal/storefront/domain/services"
	svc "gostorefront/internal/storefront/ports/services"
	"gostorefront/pkg/logger"
)

// UserIDKey - ключ Locals, под которым хранится идентификатор
// аутентифицированного пользователя.
const UserIDKey = "userID"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenExpired       = "token has expired"
	ErrorInvalidToken       = "invalid token"
)

// NewAuthMiddleware создает промежуточное ПО проверки аутентификации.
// Валидный Bearer-токен кладет идентификатор пользователя в Locals;
// обработчики передают его в use case явным аргументом.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokenSvc.ValidateAccessToken(requestCtx, token)
		if err != nil {
			message := ErrorInvalidToken
			if errors.Is(err, services.ErrExpiredJWTToken) {
				message = ErrorTokenExpired
			}
			log.Debug(requestCtx, message, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": message,
			})
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}

// UserID извлекает идентификатор пользователя, сохраненный NewAuthMiddleware.
func UserID(ctx fiber.Ctx) string {
	userID, _ := ctx.Locals(UserIDKey).(string)
	return userID
}
