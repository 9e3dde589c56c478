// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	domain "notewise/internal/auth/domain/services"
	svc "notewise/internal/auth/ports/services"
	"notewise/pkg/logger"
)

// UserClaimsKey - ключ Locals, под которым лежат проверенные claims запроса.
const UserClaimsKey = "userClaims"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// ClaimsFromCtx извлекает claims аутентифицированного пользователя из запроса.
func ClaimsFromCtx(ctx fiber.Ctx) (*domain.JWTClaims, bool) {
	claims, ok := ctx.Locals(UserClaimsKey).(*domain.JWTClaims)
	return claims, ok
}

// NewAuthMiddleware создает промежуточное ПО, проверяющее Bearer-токен
// и помещающее claims пользователя в контекст запроса.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokenSvc.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(UserClaimsKey, claims)

		return ctx.Next()
	}
}
