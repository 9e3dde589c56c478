package postgres

import (
	"notewise/internal/auth/ports/repositories"
)

// RepositoryFactory создает репозитории домена пользователя поверх одного пула.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// TokenRepository возвращает репозиторий refresh-токенов.
func (f *RepositoryFactory) TokenRepository() repositories.TokenRepository {
	return NewTokenRepository(f.pool)
}
