package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/valoreapp/valore-backend/internal/analytics"
	"github.com/valoreapp/valore-backend/internal/cache"
)

// AppContext holds shared dependencies (DB, redis, logger, analytics).
// The DB handle is opened once at process start and injected here so
// stores stay testable with an in-memory instance per test.
type AppContext struct {
	DB        *gorm.DB
	Cache     *cache.RedisCache // nil when redis is not configured
	Logger    *slog.Logger
	Analytics *analytics.Recorder
}

// New creates a new AppContext.
func New(database *gorm.DB, redisCache *cache.RedisCache, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:        database,
		Cache:     redisCache,
		Logger:    logger,
		Analytics: analytics.NewRecorder(database, redisCache, logger),
	}
}
