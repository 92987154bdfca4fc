package app

import (
	"context"
	"fmt"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/api"
	"gostorefront/internal/storefront/ports/cache"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodAddToFavourites      = "AddToFavourites"
	methodRemoveFromFavourites = "RemoveFromFavourites"
	methodGetFavourites        = "GetFavourites"

	msgAddingToFavourites     = "adding product to favourites"
	msgAlreadyInFavourites    = "product already in favourites"
	msgErrAddToFavourites     = "failed to add product to favourites"
	msgProductFavAdded        = "product added to favourites"
	msgRemovingFromFavourites = "removing product from favourites"
	msgErrRemoveFromFav       = "failed to remove product from favourites"
	msgProductFavRemoved      = "product removed from favourites"
	msgGettingFavourites      = "getting favourites"
	msgErrListFavourites      = "failed to list favourites"
	msgFavouritesRetrieved    = "favourites retrieved"

	errCtxAddingFavourite   = "adding favourite"
	errCtxRemovingFavourite = "removing favourite"
	errCtxListingFavourites = "listing favourites"
)

// FavouritesUseCaseImpl реализует интерфейс FavouritesUseCase.
type FavouritesUseCaseImpl struct {
	favRepo  repositories.FavouritesRepository
	cartRepo repositories.CartRepository
	userRepo repositories.UserRepository
	resolver *productResolver
}

// NewFavouritesUseCase создает новый экземпляр сервиса избранного.
func NewFavouritesUseCase(
	favRepo repositories.FavouritesRepository,
	cartRepo repositories.CartRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	productCache cache.ProductCache,
) api.FavouritesUseCase {
	return &FavouritesUseCaseImpl{
		favRepo:  favRepo,
		cartRepo: cartRepo,
		userRepo: userRepo,
		resolver: newProductResolver(productRepo, productCache),
	}
}

// AddToFavourites добавляет товар в избранное. Повторное добавление того же
// товара не изменяет состояние и не считается ошибкой.
func (f *FavouritesUseCaseImpl) AddToFavourites(ctx context.Context, userID, productID string) (*entities.UserView, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodAddToFavourites),
		zap.String("userID", userID),
		zap.String("productID", productID),
	)
	log.Debug(ctx, msgAddingToFavourites)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	if _, err := f.resolver.resolve(ctx, productID); err != nil {
		log.Debug(ctx, msgErrAddToFavourites, zap.Error(err))
		return nil, err
	}

	added, err := f.favRepo.Add(ctx, userID, productID)
	if err != nil {
		log.Error(ctx, msgErrAddToFavourites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingFavourite, err)
	}

	if added {
		log.Info(ctx, msgProductFavAdded)
	} else {
		log.Debug(ctx, msgAlreadyInFavourites)
	}

	return f.buildUserView(ctx, userID)
}

// RemoveFromFavourites удаляет товар из избранного. Отсутствие товара в
// избранном не является ошибкой.
func (f *FavouritesUseCaseImpl) RemoveFromFavourites(ctx context.Context, userID, productID string) (*entities.UserView, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodRemoveFromFavourites),
		zap.String("userID", userID),
		zap.String("productID", productID),
	)
	log.Debug(ctx, msgRemovingFromFavourites)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	if err := f.favRepo.Remove(ctx, userID, productID); err != nil {
		log.Error(ctx, msgErrRemoveFromFav, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRemovingFavourite, err)
	}

	log.Info(ctx, msgProductFavRemoved)
	return f.buildUserView(ctx, userID)
}

// GetFavourites возвращает избранные товары с данными каталога.
func (f *FavouritesUseCaseImpl) GetFavourites(ctx context.Context, userID string) ([]entities.Product, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetFavourites),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGettingFavourites)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	if _, err := f.userRepo.FindByID(ctx, userID); err != nil {
		log.Debug(ctx, msgErrListFavourites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavourites, err)
	}

	productIDs, err := f.favRepo.List(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListFavourites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavourites, err)
	}

	products, err := f.resolver.resolveMany(ctx, productIDs)
	if err != nil {
		log.Error(ctx, msgErrListFavourites, zap.Error(err))
		return nil, err
	}

	log.Info(ctx, msgFavouritesRetrieved, zap.Int("count", len(products)))
	return products, nil
}

func (f *FavouritesUseCaseImpl) buildUserView(ctx context.Context, userID string) (*entities.UserView, error) {
	view, err := buildUserView(ctx, userID, f.userRepo, f.cartRepo, f.favRepo)
	if err != nil {
		logger.Log(ctx).Error(ctx, msgErrBuildUserView, zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("%s: %w", errCtxBuildingUserView, err)
	}
	return view, nil
}
