package api

import (
	"context"

	"notewise/internal/auth/domain/entities"
)

// UserUseCase определяет операции с профилем пользователя.
type UserUseCase interface {
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)

	// DeleteAccount удаляет пользователя и каскадно все его заметки.
	DeleteAccount(ctx context.Context, userID int64) error
}
