package app

import (
	"context"
	"fmt"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/cache"
	"gostorefront/internal/storefront/ports/repositories"
	"gostorefront/pkg/logger"

	"go.uber.org/zap"
)

const (
	msgProductCacheHit      = "product resolved from cache"
	msgProductCacheReadFail = "product cache read failed, falling back to storage"
	msgProductCacheSetFail  = "failed to cache product"

	errCtxResolvingProduct = "resolving product"
)

// productResolver разрешает идентификаторы товаров в сущности каталога
// со сквозным чтением через кэш. Ошибки кэша не фатальны: при сбое чтения
// или записи кэша товар разрешается из хранилища.
type productResolver struct {
	productRepo  repositories.ProductRepository
	productCache cache.ProductCache
}

func newProductResolver(productRepo repositories.ProductRepository, productCache cache.ProductCache) *productResolver {
	return &productResolver{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// resolve возвращает товар по идентификатору, сначала из кэша,
// затем из хранилища с записью в кэш.
func (r *productResolver) resolve(ctx context.Context, productID string) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("productID", productID))

	if r.productCache != nil {
		cached, err := r.productCache.Get(ctx, productID)
		if err != nil {
			log.Warn(ctx, msgProductCacheReadFail, zap.Error(err))
		} else if cached != nil {
			log.Debug(ctx, msgProductCacheHit)
			return cached, nil
		}
	}

	product, err := r.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingProduct, err)
	}

	if r.productCache != nil {
		if err := r.productCache.Set(ctx, product); err != nil {
			log.Warn(ctx, msgProductCacheSetFail, zap.Error(err))
		}
	}

	return product, nil
}

// resolveMany разрешает набор идентификаторов, сохраняя порядок входного
// списка. Товары, отсутствующие в каталоге, пропускаются.
func (r *productResolver) resolveMany(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(productIDs))
	missing := make([]string, 0)

	for _, id := range productIDs {
		if r.productCache == nil {
			missing = append(missing, id)
			continue
		}

		cached, err := r.productCache.Get(ctx, id)
		if err != nil || cached == nil {
			missing = append(missing, id)
			continue
		}
		products = append(products, *cached)
	}

	if len(missing) == 0 {
		return orderProducts(productIDs, products), nil
	}

	fetched, err := r.productRepo.GetByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingProduct, err)
	}

	for i := range fetched {
		if r.productCache != nil {
			if err := r.productCache.Set(ctx, &fetched[i]); err != nil {
				logger.Log(ctx).Warn(ctx, msgProductCacheSetFail, zap.Error(err))
			}
		}
		products = append(products, fetched[i])
	}

	return orderProducts(productIDs, products), nil
}

// orderProducts упорядочивает товары в порядке запрошенных идентификаторов.
func orderProducts(productIDs []string, products []entities.Product) []entities.Product {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]entities.Product, 0, len(products))
	for _, id := range productIDs {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	return ordered
}
