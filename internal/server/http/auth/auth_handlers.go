// Package auth содержит HTTP обработчики для регистрации и аутентификации.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notewise/internal/auth/domain/entities"
	"notewise/internal/auth/domain/services"
	"notewise/internal/auth/ports/api"
	"notewise/internal/server/dto"
	"notewise/internal/server/http/middleware"
	"notewise/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerRefreshTokens = "auth handler: refresh tokens" // #nosec G101 - not a credential
	LogHandlerLogout        = "auth handler: logout"
	LogHandlerGetProfile    = "auth handler: get profile"
	LogHandlerDeleteUser    = "auth handler: delete account"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"
)

// Handler содержит HTTP обработчики для авторизации и профиля.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// statusFromError транслирует доменные ошибки в HTTP статусы.
// Ошибки аутентификации намеренно не детализируются.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrUsernameTooShort),
		errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrEmptyPassword):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUsernameAlreadyExists),
		errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken),
		errors.Is(err, services.ErrRevokedRefreshToken),
		errors.Is(err, services.ErrInvalidJWTToken),
		errors.Is(err, services.ErrExpiredJWTToken):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError отправляет клиенту ошибку с соответствующим статусом.
func respondError(ctx fiber.Ctx, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = ErrorFailedToServeRequest
	}
	if sendErr := ctx.Status(status).JSON(fiber.Map{"error": message}); sendErr != nil {
		return fmt.Errorf("sending error response: %w", sendErr)
	}
	return nil
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "email, username and password are required",
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	pair, err := h.authUseCase.Register(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.TokenResponseFromPair(pair)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if req.Username == "" || req.Password == "" {
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password are required",
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	pair, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponseFromPair(pair)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RefreshTokens обрабатывает запрос на обновление токенов.
func (h *Handler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefreshTokens)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if req.RefreshToken == "" {
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "refresh token is required",
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	pair, err := h.authUseCase.RefreshTokens(requestCtx, req.RefreshToken)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponseFromPair(pair)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	var req dto.LogoutRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if req.RefreshToken == "" {
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "refresh token is required",
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if err := h.authUseCase.Logout(requestCtx, req.RefreshToken); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusNoContent).Send(nil); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetProfile обрабатывает запрос на получение профиля пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	claims, ok := middleware.ClaimsFromCtx(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	user, err := h.userUseCase.GetProfile(requestCtx, claims.UserID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ProfileFromEntity(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteAccount обрабатывает запрос на удаление учетной записи
// вместе со всеми заметками пользователя.
func (h *Handler) DeleteAccount(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteUser)

	claims, ok := middleware.ClaimsFromCtx(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if err := h.userUseCase.DeleteAccount(requestCtx, claims.UserID); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusNoContent).Send(nil); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
