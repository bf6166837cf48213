package repository_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/valoreapp/valore-backend/internal/db"
)

func ptr[T any](v T) *T { return &v }

// setupTestDB opens a per-test in-memory database. Naming the database
// after the test keeps the pooled connections on one instance; the DSN
// turns foreign key enforcement on.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	require.NoError(t, db.Migrate(database))
	return database
}

func seedProfile(t *testing.T, gdb *gorm.DB, id, username string) {
	t.Helper()
	require.NoError(t, gdb.Create(&db.Profile{
		ID:       id,
		Username: ptr(username),
		FullName: ptr("Test " + username),
	}).Error)
}

func seedHotel(t *testing.T, gdb *gorm.DB, hotel db.Hotel) {
	t.Helper()
	require.NoError(t, gdb.Create(&hotel).Error)
}

// seedReviewAt inserts a review row directly with a fixed timestamp,
// bypassing the store, for ordering-sensitive fixtures.
func seedReviewAt(t *testing.T, gdb *gorm.DB, id, userID, hotelID string, rating int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, gdb.Create(&db.Review{
		ID:            id,
		UserID:        userID,
		HotelID:       hotelID,
		RatingOverall: rating,
		CreatedAt:     createdAt,
	}).Error)
}
