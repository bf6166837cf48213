package main

import (
	"context"

	"github.com/valoreapp/valore-backend/internal/app"
	"github.com/valoreapp/valore-backend/internal/cache"
	"github.com/valoreapp/valore-backend/internal/config"
	"github.com/valoreapp/valore-backend/internal/db"
	"github.com/valoreapp/valore-backend/internal/logger"
	"github.com/valoreapp/valore-backend/internal/server"
)

func main() {
	cfg := config.New()

	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Redis is optional; analytics counters are skipped without it.
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Error("failed to connect to redis", "err", err)
			return
		}
	}

	appCtx := app.New(database, redisCache, log)

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed demo data", "err", err)
		}
	}

	if err := server.New(appCtx, cfg).Run(); err != nil {
		log.Error("http server stopped", "err", err)
	}
}
