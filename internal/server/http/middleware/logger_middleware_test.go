package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notewise/internal/server/http/middleware"
	"notewise/pkg/logger"
)

// requestIDFromPing прогоняет запрос через промежуточное ПО и возвращает
// request_id, который увидел обработчик.
func requestIDFromPing(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestLoggerMiddlewareAttachesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewLoggerMiddleware())
	app.Get("/ping", func(ctx fiber.Ctx) error {
		id, ok := logger.GetRequestID(ctx.Context())
		if !ok {
			return ctx.Status(fiber.StatusInternalServerError).SendString("no request id")
		}
		return ctx.SendString(id)
	})

	first := requestIDFromPing(t, app)
	second := requestIDFromPing(t, app)

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
