package config

import (
	"time"

	"notewise/pkg/db/redis"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host       string `yaml:"host" env:"NOTEWISE_REDIS_HOST" env-default:"localhost"`
	Port       int    `yaml:"port" env:"NOTEWISE_REDIS_PORT" env-default:"6379"`
	Password   string `yaml:"password" env:"NOTEWISE_REDIS_PASSWORD" env-default:""`
	DB         int    `yaml:"db" env:"NOTEWISE_REDIS_DB" env-default:"0"`
	PoolSize   int    `yaml:"pool_size" env:"NOTEWISE_REDIS_POOL_SIZE" env-default:"10"`
	ProfileTTL string `yaml:"profile_ttl" env:"NOTEWISE_REDIS_PROFILE_TTL" env-default:"5m"`
}

// GetProfileTTL возвращает время жизни кэшированного профиля.
func (r *RedisConfig) GetProfileTTL() time.Duration {
	duration, err := time.ParseDuration(r.ProfileTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return duration
}

// ClientConfig преобразует настройки в конфигурацию клиента Redis.
func (r *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  redis.DefaultTimeout,
	}
}
