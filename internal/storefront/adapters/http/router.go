// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"gostorefront/internal/storefront/adapters/http/auth"
	"gostorefront/internal/storefront/adapters/http/cart"
	"gostorefront/internal/storefront/adapters/http/favourites"
	"gostorefront/internal/storefront/adapters/http/middleware"
	"gostorefront/internal/storefront/adapters/http/orders"
	"gostorefront/internal/storefront/ports/api"
	svc "gostorefront/internal/storefront/ports/services"
)

// UseCases группирует основные порты, обслуживаемые HTTP сервером.
type UseCases struct {
	Auth       api.AuthUseCase
	User       api.UserUseCase
	Cart       api.CartUseCase
	Favourites api.FavouritesUseCase
	Orders     api.OrderUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases, tokenSvc svc.TokenService) {
	authHandler := auth.NewHandler(useCases.Auth, useCases.User)
	cartHandler := cart.NewHandler(useCases.Cart)
	favouritesHandler := favourites.NewHandler(useCases.Favourites)
	orderHandler := orders.NewHandler(useCases.Orders)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshTokens)
	authRoutes.Post("/logout", authHandler.Logout)

	authenticated := middleware.NewAuthMiddleware(tokenSvc)

	// Защищенные маршруты.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(authenticated)
	userRoutes.Get("/profile", authHandler.GetProfile)

	// Маршруты корзины (требуют авторизации).
	cartRoutes := apiV1.Group("/cart")
	cartRoutes.Use(authenticated)
	cartRoutes.Get("/", cartHandler.GetCart)
	cartRoutes.Post("/", cartHandler.AddToCart)
	cartRoutes.Delete("/", cartHandler.RemoveFromCart)

	// Маршруты избранного (требуют авторизации).
	favouritesRoutes := apiV1.Group("/favourites")
	favouritesRoutes.Use(authenticated)
	favouritesRoutes.Get("/", favouritesHandler.GetFavourites)
	favouritesRoutes.Post("/", favouritesHandler.AddToFavourites)
	favouritesRoutes.Delete("/", favouritesHandler.RemoveFromFavourites)

	// Маршруты заказов (требуют авторизации).
	orderRoutes := apiV1.Group("/orders")
	orderRoutes.Use(authenticated)
	orderRoutes.Post("/", orderHandler.PlaceOrder)
	orderRoutes.Get("/", orderHandler.ListOrders)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
