package config

import (
	"time"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host       string        `yaml:"host" env:"STORE_REDIS_HOST" env-default:"localhost"`
	Port       int           `yaml:"port" env:"STORE_REDIS_PORT" env-default:"6379"`
	Password   string        `yaml:"password" env:"STORE_REDIS_PASSWORD" env-default:""`
	DB         int           `yaml:"db" env:"STORE_REDIS_DB" env-default:"0"`
	PoolSize   int           `yaml:"pool_size" env:"STORE_REDIS_POOL_SIZE" env-default:"10"`
	Timeout    time.Duration `yaml:"timeout" env:"STORE_REDIS_TIMEOUT" env-default:"5s"`
	ProductTTL time.Duration `yaml:"product_ttl" env:"STORE_REDIS_PRODUCT_TTL" env-default:"15m"`
}
