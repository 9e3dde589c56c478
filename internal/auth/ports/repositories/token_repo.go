package repositories

import (
	"context"

	"notewise/internal/auth/domain/services"
)

// TokenRepository определяет интерфейс для хранения refresh-токенов.
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, token *services.RefreshToken) error

	FindByToken(ctx context.Context, token string) (*services.RefreshToken, error)

	RevokeToken(ctx context.Context, token string) error

	RevokeAllUserTokens(ctx context.Context, userID int64) error

	CleanupExpiredTokens(ctx context.Context) (int64, error)
}
