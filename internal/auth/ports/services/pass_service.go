// Package services определяет интерфейсы вспомогательных сервисов аутентификации.
package services

import (
	"context"

	"notewise/internal/auth/domain/entities"
)

// PasswordService определяет операции для манипулирования паролем.
type PasswordService interface {
	Hash(ctx context.Context, password string) (entities.PasswordDigest, error)

	Verify(ctx context.Context, password string, digest entities.PasswordDigest) (bool, error)
}
