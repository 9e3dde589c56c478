// Package api определяет интерфейсы уровня приложения для домена пользователя.
package api

import (
	"context"

	"notewise/internal/auth/domain/services"
)

// AuthUseCase определяет операции регистрации и аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, username, password string) (*services.TokenPair, error)

	Login(ctx context.Context, username, password string) (*services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, refreshToken string) error
}
