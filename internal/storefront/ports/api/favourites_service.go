package api

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// FavouritesUseCase определяет основной порт для операций с избранным.
type FavouritesUseCase interface {
	AddToFavourites(ctx context.Context, userID, productID string) (*entities.UserView, error)

	RemoveFromFavourites(ctx context.Context, userID, productID string) (*entities.UserView, error)

	GetFavourites(ctx context.Context, userID string) ([]entities.Product, error)
}
