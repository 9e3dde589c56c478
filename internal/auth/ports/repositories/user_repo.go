// Package repositories определяет интерфейсы хранения для домена пользователя.
package repositories

import (
	"context"

	"notewise/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователем.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// Delete удаляет пользователя вместе со всеми его заметками
	// в рамках одной транзакции.
	Delete(ctx context.Context, id int64) error
}
