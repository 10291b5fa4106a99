package fx

import (
	"database/sql"

	"boxscore/internal/config"
	"boxscore/internal/database"
	"boxscore/internal/db"
	"boxscore/internal/feed"
	"boxscore/internal/logger"
	"boxscore/internal/metrics"
	"boxscore/internal/publisher"
	"boxscore/internal/repository"
	"boxscore/internal/server"
	"boxscore/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(metrics.New),
	// cache store
	fx.Provide(
		repository.NewCacheRepository,
		func(r *repository.CacheRepository) service.CacheStore { return r },
	),
	// upstream feed
	fx.Provide(
		feed.NewClient,
		func(c *feed.Client) service.Fetcher { return c },
	),
	fx.Provide(publisher.NewNotifier),
	// svc
	fx.Provide(service.NewFreshnessService),
	fx.Provide(service.NewPrimer),
	fx.Provide(service.NewGameStateService),
	// server
	fx.Provide(server.NewBoxScoreServer),
)
