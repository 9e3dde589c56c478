// Package services содержит реализации сервисов паролей и токенов.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"notewise/internal/auth/domain/entities"
	"notewise/internal/auth/domain/services"
	svc "notewise/internal/auth/ports/services"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgErrorComparingHash   = "error comparing password with hash"
	errMsgUnreadableDigest     = "stored digest is not readable"
)

// ServiceBcrypt реализует интерфейс PasswordService.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает новый экземпляр сервиса bcrypt.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хэширует пароль с помощью bcrypt и возвращает непрозрачный дайджест.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (entities.PasswordDigest, error) {
	if password == "" {
		return entities.PasswordDigest{}, entities.ErrEmptyPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return entities.PasswordDigest{}, fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed)
	}

	return entities.DigestFromHash(string(hashedBytes)), nil
}

// Verify проверяет соответствие пароля дайджесту.
func (s *ServiceBcrypt) Verify(_ context.Context, password string, digest entities.PasswordDigest) (bool, error) {
	if password == "" || digest.IsZero() {
		return false, services.ErrInvalidPassword
	}

	value, err := digest.Value()
	if err != nil {
		return false, fmt.Errorf("%s: %w", errMsgUnreadableDigest, err)
	}
	hash, ok := value.(string)
	if !ok {
		return false, services.ErrInvalidPassword
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", errMsgErrorComparingHash, err)
	}

	return true, nil
}
