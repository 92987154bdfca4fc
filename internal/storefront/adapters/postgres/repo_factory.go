package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gostorefront/internal/storefront/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo       repositories.UserRepository
	tokenRepo      repositories.TokenRepository
	cartRepo       repositories.CartRepository
	favouritesRepo repositories.FavouritesRepository
	orderRepo      repositories.OrderRepository
	productRepo    repositories.ProductRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:       NewUserRepository(pool),
		tokenRepo:      NewTokenRepository(pool),
		cartRepo:       NewCartRepository(pool),
		favouritesRepo: NewFavouritesRepository(pool),
		orderRepo:      NewOrderRepository(pool),
		productRepo:    NewProductRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// TokenRepository возвращает репозиторий токенов.
func (f *RepositoryFactory) TokenRepository() repositories.TokenRepository {
	return f.tokenRepo
}

// CartRepository возвращает репозиторий корзины.
func (f *RepositoryFactory) CartRepository() repositories.CartRepository {
	return f.cartRepo
}

// FavouritesRepository возвращает репозиторий избранного.
func (f *RepositoryFactory) FavouritesRepository() repositories.FavouritesRepository {
	return f.favouritesRepo
}

// OrderRepository возвращает репозиторий заказов.
func (f *RepositoryFactory) OrderRepository() repositories.OrderRepository {
	return f.orderRepo
}

// ProductRepository возвращает репозиторий каталога.
func (f *RepositoryFactory) ProductRepository() repositories.ProductRepository {
	return f.productRepo
}
