// Package cache содержит реализацию кэша товаров с использованием Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gostorefront/internal/storefront/domain/entities"
	"gostorefront/internal/storefront/ports/cache"
	"gostorefront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet   = "get"
	LogMethodSet   = "set"
	LogMethodClose = "close"

	ErrorFailedToGet       = "failed to get product from redis"
	ErrorFailedToSet       = "failed to set product in redis"
	ErrorFailedToUnmarshal = "failed to unmarshal cached product"
	ErrorFailedToClose     = "failed to close redis connection"
)

const keyPrefix = "product:"

// ProductCache реализует интерфейс cache.ProductCache с использованием Redis.
// Товары неизменяемы с точки зрения ядра витрины, поэтому инвалидация
// сводится к истечению TTL.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache создает новый экземпляр ProductCache.
func NewProductCache(client *redis.Client, ttl time.Duration) cache.ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

// Get получает товар по ID. Промах кэша возвращается как (nil, nil).
func (c *ProductCache) Get(ctx context.Context, productID string) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("productID", productID))

	value, err := c.client.Get(ctx, keyPrefix+productID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var product entities.Product
	if err := json.Unmarshal([]byte(value), &product); err != nil {
		log.Error(ctx, ErrorFailedToUnmarshal, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToUnmarshal, err)
	}

	return &product, nil
}

// Set сохраняет товар в кэше с настроенным TTL.
func (c *ProductCache) Set(ctx context.Context, product *entities.Product) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("productID", product.ID))

	payload, err := json.Marshal(product)
	if err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	if err := c.client.Set(ctx, keyPrefix+product.ID, payload, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *ProductCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
