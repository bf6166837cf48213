// Package analytics records non-critical telemetry. Every write is
// best-effort: failures are logged and swallowed, never surfaced to the
// operation that triggered them.
package analytics

import (
	"context"
	"encoding/json"
	"log/slog"

	"gorm.io/gorm"

	"github.com/valoreapp/valore-backend/internal/cache"
	"github.com/valoreapp/valore-backend/internal/db"
	"github.com/valoreapp/valore-backend/internal/ident"
)

type Recorder struct {
	db     *gorm.DB
	cache  *cache.RedisCache // nil when redis is not configured
	logger *slog.Logger
}

func NewRecorder(database *gorm.DB, redisCache *cache.RedisCache, logger *slog.Logger) *Recorder {
	return &Recorder{db: database, cache: redisCache, logger: logger}
}

// Record persists one event row and bumps the redis counter for the
// event name. It never returns an error.
func (r *Recorder) Record(ctx context.Context, userID *string, eventName string, payload map[string]any) {
	body := "{}"
	if len(payload) > 0 {
		if b, err := json.Marshal(payload); err == nil {
			body = string(b)
		} else {
			r.logger.Debug("analytics payload not serializable", "event", eventName, "err", err)
		}
	}

	event := db.Event{
		ID:        ident.NewID(),
		UserID:    userID,
		EventName: eventName,
		Payload:   body,
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		r.logger.Debug("analytics event write failed", "event", eventName, "err", err)
	}

	if r.cache != nil {
		if _, err := r.cache.IncrEventCount(ctx, eventName); err != nil {
			r.logger.Debug("analytics counter incr failed", "event", eventName, "err", err)
		}
	}
}
