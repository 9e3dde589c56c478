// Сервис заметок: HTTP API для регистрации пользователей и CRUD заметок.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	authcache "notewise/internal/auth/adapters/cache"
	authpg "notewise/internal/auth/adapters/postgres"
	authsvc "notewise/internal/auth/adapters/services"
	authapp "notewise/internal/auth/app"
	notespg "notewise/internal/notes/adapters/postgres"
	notesapp "notewise/internal/notes/app"
	"notewise/internal/server/config"
	serverhttp "notewise/internal/server/http"
	authhandler "notewise/internal/server/http/auth"
	noteshandler "notewise/internal/server/http/notes"
	"notewise/pkg/db/postgres"
	"notewise/pkg/db/redis"
	"notewise/pkg/logger"
	"notewise/pkg/shutdown"
)

// Константы для сообщений.
const (
	LogServerStarting = "starting HTTP server"
	LogServerStopped  = "HTTP server stopped"
	LogShutdownDone   = "graceful shutdown complete"

	ErrInitLogger     = "failed to initialize logger: %v"
	ErrLoadConfig     = "failed to load config"
	ErrConnectDB      = "failed to connect to database"
	ErrRunMigrations  = "failed to run migrations"
	ErrConnectRedis   = "failed to connect to Redis"
	ErrServerStopped  = "HTTP server stopped with error"
	ErrShutdownServer = "error during server shutdown"
)

func main() {
	ctx := logger.NewRequestIDContext(context.Background(), "")

	if err := logger.InitGlobalLogger(logger.Development); err != nil {
		log.Printf(ErrInitLogger, err)
		os.Exit(1)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Log(ctx).Fatal(ctx, ErrLoadConfig, zap.Error(err))
	}

	appLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		logger.Log(ctx).Fatal(ctx, fmt.Sprintf(ErrInitLogger, err))
	}
	logger.SetGlobalLogger(appLogger)
	ctx = logger.NewContext(ctx, appLogger)

	database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
	if err != nil {
		appLogger.Fatal(ctx, ErrConnectDB, zap.Error(err))
	}

	if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.MigrationsPath); err != nil {
		appLogger.Fatal(ctx, ErrRunMigrations, zap.Error(err))
	}

	redisClient, err := redis.NewClient(cfg.Redis.ClientConfig())
	if err != nil {
		appLogger.Fatal(ctx, ErrConnectRedis, zap.Error(err))
	}

	repoFactory := authpg.NewRepositoryFactory(database.Pool())
	userRepo := repoFactory.UserRepository()
	tokenRepo := repoFactory.TokenRepository()
	noteRepo := notespg.NewNoteRepository(database.Pool())

	serviceFactory := authsvc.NewServiceFactory(
		cfg.JWT.SecretKey,
		cfg.JWT.GetAccessTokenTTL(),
		cfg.JWT.GetRefreshTokenTTL(),
		cfg.JWT.BCryptCost,
	)
	passwordSvc := serviceFactory.PasswordService()
	tokenSvc := serviceFactory.TokenService()

	profileCache := authcache.NewRedisProfileCache(redisClient.RawClient(), cfg.Redis.GetProfileTTL())

	authUseCase := authapp.NewAuthUseCase(userRepo, tokenRepo, passwordSvc, tokenSvc)
	userUseCase := authapp.NewUserUseCase(userRepo, tokenRepo, profileCache)
	noteUseCase := notesapp.NewNoteUseCase(noteRepo)

	authHandler := authhandler.NewHandler(authUseCase, userUseCase)
	notesHandler := noteshandler.NewHandler(noteUseCase)

	app := serverhttp.NewRouter(authHandler, notesHandler, tokenSvc)

	go func() {
		appLogger.Info(ctx, LogServerStarting, zap.String("address", cfg.HTTP.Address()))
		if err := app.Listen(cfg.HTTP.Address()); err != nil {
			appLogger.Error(ctx, ErrServerStopped, zap.Error(err))
		}
		appLogger.Info(ctx, LogServerStopped)
	}()

	shutdown.Wait(cfg.Shutdown.GetTimeout(),
		func(shutdownCtx context.Context) error {
			if err := app.Shutdown(); err != nil {
				appLogger.Error(shutdownCtx, ErrShutdownServer, zap.Error(err))
				return fmt.Errorf("%s: %w", ErrShutdownServer, err)
			}
			return nil
		},
		func(shutdownCtx context.Context) error {
			database.Close(shutdownCtx)
			return nil
		},
		func(context.Context) error {
			return redisClient.Close()
		},
	)

	appLogger.Info(ctx, LogShutdownDone)
	_ = appLogger.Sync()
}
