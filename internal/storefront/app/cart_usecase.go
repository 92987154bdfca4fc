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
	methodAddToCart      = "AddToCart"
	methodRemoveFromCart = "RemoveFromCart"
	methodGetCart        = "GetCart"

	msgAddingToCart         = "adding product to cart"
	msgInvalidCartQuantity  = "invalid quantity provided"
	msgErrAddToCart         = "failed to add product to cart"
	msgProductAddedToCart   = "product added to cart"
	msgRemovingFromCart     = "removing product from cart"
	msgErrRemoveFromCart    = "failed to remove product from cart"
	msgProductRemovedCart   = "product removed from cart"
	msgGettingCart          = "getting cart contents"
	msgErrListCartItems     = "failed to list cart items"
	msgCartRetrieved        = "cart contents retrieved"
	msgErrBuildUserView     = "failed to build user view"
	msgCartLineUnresolvable = "cart references a product missing from the catalog"

	errCtxValidatingQuantity = "validating quantity"
	errCtxAddingCartItem     = "adding cart item"
	errCtxRemovingCartItem   = "removing cart item"
	errCtxListingCartItems   = "listing cart items"
	errCtxBuildingUserView   = "building user view"
)

// CartUseCaseImpl реализует интерфейс CartUseCase.
type CartUseCaseImpl struct {
	cartRepo repositories.CartRepository
	favRepo  repositories.FavouritesRepository
	userRepo repositories.UserRepository
	resolver *productResolver
}

// NewCartUseCase создает новый экземпляр сервиса корзины.
func NewCartUseCase(
	cartRepo repositories.CartRepository,
	favRepo repositories.FavouritesRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	productCache cache.ProductCache,
) api.CartUseCase {
	return &CartUseCaseImpl{
		cartRepo: cartRepo,
		favRepo:  favRepo,
		userRepo: userRepo,
		resolver: newProductResolver(productRepo, productCache),
	}
}

// AddToCart добавляет товар в корзину пользователя. Количество суммируется
// с уже существующей позицией того же товара на уровне хранилища.
func (c *CartUseCaseImpl) AddToCart(ctx context.Context, userID, productID string, quantity int32) (*entities.UserView, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodAddToCart),
		zap.String("userID", userID),
		zap.String("productID", productID),
		zap.Int32("quantity", quantity),
	)
	log.Debug(ctx, msgAddingToCart)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}
	if quantity <= 0 {
		log.Debug(ctx, msgInvalidCartQuantity)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingQuantity, entities.ErrInvalidQuantity)
	}

	if _, err := c.resolver.resolve(ctx, productID); err != nil {
		log.Debug(ctx, msgErrAddToCart, zap.Error(err))
		return nil, err
	}

	if err := c.cartRepo.AddItem(ctx, userID, productID, quantity); err != nil {
		log.Error(ctx, msgErrAddToCart, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingCartItem, err)
	}

	log.Info(ctx, msgProductAddedToCart)
	return c.buildUserView(ctx, userID)
}

// RemoveFromCart уменьшает количество позиции на quantity. При quantity <= 0
// позиция удаляется целиком, как и при неположительном остатке.
func (c *CartUseCaseImpl) RemoveFromCart(ctx context.Context, userID, productID string, quantity int32) (*entities.UserView, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodRemoveFromCart),
		zap.String("userID", userID),
		zap.String("productID", productID),
		zap.Int32("quantity", quantity),
	)
	log.Debug(ctx, msgRemovingFromCart)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	if err := c.cartRepo.RemoveItem(ctx, userID, productID, quantity); err != nil {
		log.Debug(ctx, msgErrRemoveFromCart, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRemovingCartItem, err)
	}

	log.Info(ctx, msgProductRemovedCart)
	return c.buildUserView(ctx, userID)
}

// GetCart возвращает содержимое корзины с разрешенными товарами каталога.
func (c *CartUseCaseImpl) GetCart(ctx context.Context, userID string) ([]entities.ResolvedCartLine, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetCart),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGettingCart)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxEmptyUserID, entities.ErrEmptyUserID)
	}

	lines, err := c.cartRepo.ListItems(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListCartItems, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingCartItems, err)
	}

	resolved := make([]entities.ResolvedCartLine, 0, len(lines))
	for _, line := range lines {
		product, err := c.resolver.resolve(ctx, line.ProductID)
		if err != nil {
			// Позиция с удаленным из каталога товаром пропускается,
			// а не валит весь запрос.
			log.Warn(ctx, msgCartLineUnresolvable,
				zap.String("productID", line.ProductID), zap.Error(err))
			continue
		}
		resolved = append(resolved, entities.ResolvedCartLine{
			Product:  *product,
			Quantity: line.Quantity,
		})
	}

	log.Info(ctx, msgCartRetrieved, zap.Int("lines", len(resolved)))
	return resolved, nil
}

// buildUserView собирает актуальное представление пользователя: профиль,
// корзину и избранное после выполненной мутации.
func (c *CartUseCaseImpl) buildUserView(ctx context.Context, userID string) (*entities.UserView, error) {
	view, err := buildUserView(ctx, userID, c.userRepo, c.cartRepo, c.favRepo)
	if err != nil {
		logger.Log(ctx).Error(ctx, msgErrBuildUserView, zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("%s: %w", errCtxBuildingUserView, err)
	}
	return view, nil
}

// buildUserView читает профиль пользователя вместе с корзиной и избранным.
func buildUserView(
	ctx context.Context,
	userID string,
	userRepo repositories.UserRepository,
	cartRepo repositories.CartRepository,
	favRepo repositories.FavouritesRepository,
) (*entities.UserView, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGetUserForProfile, err)
	}

	cart, err := cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingCartItems, err)
	}

	favourites, err := favRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favourites: %w", err)
	}

	return &entities.UserView{
		User:       *user,
		Cart:       cart,
		Favourites: favourites,
	}, nil
}
