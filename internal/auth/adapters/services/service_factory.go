package services

import (
	"time"

	svc "notewise/internal/auth/ports/services"
)

// ServiceFactory создает сервисы паролей и токенов с общими настройками.
type ServiceFactory struct {
	secretKey       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	bcryptCost      int
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		secretKey:       secretKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		bcryptCost:      bcryptCost,
	}
}

// PasswordService возвращает сервис хэширования паролей.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return NewBcrypt(f.bcryptCost)
}

// TokenService возвращает сервис токенов.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return NewJWT(f.secretKey, f.accessTokenTTL, f.refreshTokenTTL)
}
