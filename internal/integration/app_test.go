package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/malapronta/internal/app"
	"github.com/metinatakli/malapronta/internal/repository"
	appvalidator "github.com/metinatakli/malapronta/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Logger *slog.Logger
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient, cfg.SecureCookies)

	favoritesSlot := repository.NewRedisFavoritesSlot(redisClient)
	destinationRepo := repository.NewPostgresDestinationRepository(db)
	tripRepo := repository.NewPostgresTripRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		favoritesSlot,
		destinationRepo,
		tripRepo,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Redis:  redisClient,
		Logger: logger,
	}, nil
}
