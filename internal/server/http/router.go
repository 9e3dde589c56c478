// Package http собирает HTTP сервер приложения: маршруты и промежуточное ПО.
package http

import (
	"github.com/gofiber/fiber/v3"

	svc "notewise/internal/auth/ports/services"
	"notewise/internal/server/http/auth"
	"notewise/internal/server/http/middleware"
	"notewise/internal/server/http/notes"
)

// NewRouter создает приложение fiber со всеми маршрутами API.
func NewRouter(
	authHandler *auth.Handler,
	notesHandler *notes.Handler,
	tokenSvc svc.TokenService,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "notewise",
	})

	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshTokens)
	authGroup.Post("/logout", authHandler.Logout)

	requireAuth := middleware.NewAuthMiddleware(tokenSvc)

	userGroup := api.Group("/user")
	userGroup.Use(requireAuth)
	userGroup.Get("/profile", authHandler.GetProfile)
	userGroup.Delete("/", authHandler.DeleteAccount)

	notesGroup := api.Group("/notes")
	notesGroup.Use(requireAuth)
	notesGroup.Post("/", notesHandler.CreateNote)
	notesGroup.Get("/", notesHandler.ListNotes)
	notesGroup.Get("/:note_id", notesHandler.GetNote)
	notesGroup.Patch("/:note_id", notesHandler.UpdateNote)
	notesGroup.Delete("/:note_id", notesHandler.DeleteNote)

	app.Use(func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	})

	return app
}
