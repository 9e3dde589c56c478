// Package cache определяет интерфейс кэширования профилей пользователей.
package cache

import (
	"context"

	"notewise/internal/auth/domain/entities"
)

// ProfileCache определяет операции кэша профилей. Кэш никогда не хранит
// и не возвращает хэш пароля.
type ProfileCache interface {
	// GetProfile возвращает (nil, nil) при промахе кэша.
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)

	SetProfile(ctx context.Context, user *entities.User) error

	InvalidateProfile(ctx context.Context, userID int64) error
}
