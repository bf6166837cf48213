package feed_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/valoreapp/valore-backend/internal/db"
	"github.com/valoreapp/valore-backend/internal/feed"
	"github.com/valoreapp/valore-backend/internal/repository"
	"github.com/valoreapp/valore-backend/internal/store"
)

type stubFollows struct {
	ids []string
}

func (s *stubFollows) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	return s.ids, nil
}

type trackingReviews struct {
	called bool
}

func (s *trackingReviews) RecentByAuthors(ctx context.Context, authorIDs []string, limit int) ([]store.ReviewWithDetails, error) {
	s.called = true
	return []store.ReviewWithDetails{}, nil
}

func TestGetFeed_EmptyFollowingShortCircuits(t *testing.T) {
	reviews := &trackingReviews{}
	assembler := feed.NewAssembler(&stubFollows{}, reviews)

	items, err := assembler.GetFeed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.False(t, reviews.called, "review source must not be queried for an empty following set")
}

func setupFeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func ptr[T any](v T) *T { return &v }

func TestGetFeed_NewestFirstCappedAtLimit(t *testing.T) {
	ctx := context.Background()
	gdb := setupFeedDB(t)

	followRepo := repository.NewFollowRepository(gdb)
	reviewRepo := repository.NewReviewRepository(gdb)
	assembler := feed.NewAssembler(followRepo, reviewRepo)

	viewer := db.Profile{ID: "viewer", Username: ptr("viewer")}
	require.NoError(t, gdb.Create(&viewer).Error)

	// Three followees and one stranger, each writing 20 reviews.
	authors := []string{"friend-1", "friend-2", "friend-3", "stranger"}
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seq := 0
	for _, author := range authors {
		require.NoError(t, gdb.Create(&db.Profile{ID: author, Username: ptr(author)}).Error)
		for i := 0; i < 20; i++ {
			hotelID := fmt.Sprintf("hotel-%s-%d", author, i)
			require.NoError(t, gdb.Create(&db.Hotel{ID: hotelID, Name: hotelID}).Error)
			require.NoError(t, gdb.Create(&db.Review{
				ID:            fmt.Sprintf("review-%s-%d", author, i),
				UserID:        author,
				HotelID:       hotelID,
				RatingOverall: 4,
				CreatedAt:     base.Add(time.Duration(seq) * time.Minute),
			}).Error)
			seq++
		}
	}
	for _, friend := range authors[:3] {
		require.NoError(t, followRepo.FollowUser(ctx, "viewer", friend))
	}

	items, err := assembler.GetFeed(ctx, "viewer")
	require.NoError(t, err)

	// 60 followee reviews exist but a page holds only the newest 50.
	require.Len(t, items, feed.Limit)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Review.CreatedAt.After(items[i-1].Review.CreatedAt))
	}
	for _, item := range items {
		assert.NotEqual(t, "stranger", item.Review.UserID)
		// Friend mirrors the review's author.
		assert.Equal(t, item.Review.UserID, item.Friend.ID)
		assert.NotNil(t, item.Friend.Username)
	}
}
