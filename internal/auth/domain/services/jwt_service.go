package services

import (
	"errors"
	"time"
)

// Ошибки работы с JWT.
var (
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
)

// JWTConfig содержит параметры выпуска токенов.
type JWTConfig struct {
	SecretKey       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// JWTClaims представляет доменную модель полезной нагрузки токена.
type JWTClaims struct {
	UserID    int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
