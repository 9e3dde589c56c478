// Package cache содержит реализацию кэширования профилей с использованием Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notewise/internal/auth/domain/entities"
	"notewise/internal/auth/ports/cache"
	"notewise/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet        = "GetProfile"
	LogMethodSet        = "SetProfile"
	LogMethodInvalidate = "InvalidateProfile"

	ErrorFailedToGet        = "failed to get profile from redis"
	ErrorFailedToSet        = "failed to set profile in redis"
	ErrorFailedToInvalidate = "failed to invalidate profile in redis"
)

// profileKeyPrefix - префикс ключей кэша профилей.
const profileKeyPrefix = "profile:"

// cachedProfile - сериализуемая форма профиля. Хэш пароля в кэш не попадает.
type cachedProfile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisProfileCache реализует интерфейс ProfileCache с использованием Redis.
type RedisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProfileCache создает новый экземпляр кэша профилей.
func NewRedisProfileCache(client *redis.Client, ttl time.Duration) cache.ProfileCache {
	return &RedisProfileCache{client: client, ttl: ttl}
}

func profileKey(userID int64) string {
	return fmt.Sprintf("%s%d", profileKeyPrefix, userID)
}

// GetProfile получает профиль из кэша; при промахе возвращает (nil, nil).
func (c *RedisProfileCache) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.Int64("userID", userID))

	raw, err := c.client.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var cached cachedProfile
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		// Поврежденная запись равнозначна промаху.
		log.Warn(ctx, "cached profile is not decodable, treating as miss", zap.Error(err))
		return nil, nil
	}

	return &entities.User{
		ID:        cached.ID,
		Email:     cached.Email,
		Username:  cached.Username,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// SetProfile сохраняет профиль в кэш с TTL.
func (c *RedisProfileCache) SetProfile(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.Int64("userID", user.ID))

	raw, err := json.Marshal(cachedProfile{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encoding cached profile: %w", err)
	}

	if err := c.client.Set(ctx, profileKey(user.ID), raw, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// InvalidateProfile удаляет профиль из кэша.
func (c *RedisProfileCache) InvalidateProfile(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodInvalidate), zap.Int64("userID", userID))

	if err := c.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}
