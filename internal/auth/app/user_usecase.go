package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notewise/internal/auth/domain/entities"
	"notewise/internal/auth/ports/api"
	"notewise/internal/auth/ports/cache"
	"notewise/internal/auth/ports/repositories"
	"notewise/pkg/logger"
)

const (
	methodGetProfile    = "GetProfile"
	methodDeleteAccount = "DeleteAccount"

	msgGettingProfile       = "getting user profile"
	msgProfileFromCache     = "profile served from cache"
	msgProfileCached        = "profile stored in cache"
	msgDeletingAccount      = "deleting user account"
	msgAccountDeleted       = "user account deleted with all owned notes"
	msgErrGettingProfile    = "failed to get user profile"
	msgErrCacheRead         = "profile cache read failed, falling back to repository"
	msgErrCacheWrite        = "failed to store profile in cache"
	msgErrCacheInvalidate   = "failed to invalidate cached profile"
	msgErrRevokingTokens    = "failed to revoke user tokens"
	msgErrDeletingAccount   = "failed to delete user account"
	errCtxFindingProfile    = "finding user profile"
	errCtxDeletingAccount   = "deleting account"
	errCtxRevokingAllTokens = "revoking user tokens"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo     repositories.UserRepository
	tokenRepo    repositories.TokenRepository
	profileCache cache.ProfileCache
}

// NewUserUseCase создает новый экземпляр сервиса профилей.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	profileCache cache.ProfileCache,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		profileCache: profileCache,
	}
}

// GetProfile возвращает профиль пользователя, используя кэш со сквозным чтением.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.Int64("userID", userID))
	log.Debug(ctx, msgGettingProfile)

	if u.profileCache != nil {
		cached, err := u.profileCache.GetProfile(ctx, userID)
		if err != nil {
			log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		} else if cached != nil {
			log.Debug(ctx, msgProfileFromCache)
			return cached, nil
		}
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Debug(ctx, msgErrGettingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingProfile, err)
	}

	if u.profileCache != nil {
		if err := u.profileCache.SetProfile(ctx, user); err != nil {
			log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
		} else {
			log.Debug(ctx, msgProfileCached)
		}
	}

	return user, nil
}

// DeleteAccount удаляет пользователя вместе со всеми его заметками.
// Заметки и пользователь удаляются в одной транзакции репозитория.
func (u *UserUseCaseImpl) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAccount), zap.Int64("userID", userID))
	log.Info(ctx, msgDeletingAccount)

	if err := u.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		log.Error(ctx, msgErrRevokingTokens, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingAllTokens, err)
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		log.Error(ctx, msgErrDeletingAccount, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingAccount, err)
	}

	if u.profileCache != nil {
		if err := u.profileCache.InvalidateProfile(ctx, userID); err != nil {
			log.Warn(ctx, msgErrCacheInvalidate, zap.Error(err))
		}
	}

	log.Info(ctx, msgAccountDeleted)
	return nil
}
