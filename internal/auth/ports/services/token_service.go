package services

import (
	"context"
	"time"

	domain "notewise/internal/auth/domain/services"
)

// TokenService определяет операции выпуска и проверки токенов.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID int64, username string) (string, time.Time, error)

	GenerateRefreshToken(ctx context.Context, userID int64) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (*domain.JWTClaims, error)
}
