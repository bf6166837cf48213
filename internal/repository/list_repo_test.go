package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/repository"
)

func TestGetOrCreateDefaultList_Singleton(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")

	first, err := repo.GetOrCreateDefaultList(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Saved", first.Name)
	assert.True(t, first.IsDefault)

	second, err := repo.GetOrCreateDefaultList(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, gdb.Model(&db.List{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateList(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")

	list, err := repo.CreateList(ctx, "user-1", "Honeymoon ideas")
	require.NoError(t, err)
	assert.NotEmpty(t, list.ID)
	assert.False(t, list.IsDefault)

	_, err = repo.CreateList(ctx, "user-1", "")
	assert.ErrorIs(t, err, svcErr.ErrInvalid)
}

func TestSaveHotelToList_Idempotent(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")
	seedHotel(t, gdb, db.Hotel{ID: "hotel-1", Name: "The Siren"})
	list, err := repo.GetOrCreateDefaultList(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, repo.SaveHotelToList(ctx, list.ID, "hotel-1"))
	require.NoError(t, repo.SaveHotelToList(ctx, list.ID, "hotel-1"))

	var count int64
	require.NoError(t, gdb.Model(&db.ListItem{}).Where("list_id = ?", list.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveHotelToList_UnknownHotel(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")
	list, err := repo.GetOrCreateDefaultList(ctx, "user-1")
	require.NoError(t, err)

	err = repo.SaveHotelToList(ctx, list.ID, "nowhere")
	assert.ErrorIs(t, err, svcErr.ErrReference)
}

func TestRemoveHotelFromList_Idempotent(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")
	seedHotel(t, gdb, db.Hotel{ID: "hotel-1", Name: "The Siren"})
	list, err := repo.GetOrCreateDefaultList(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, repo.SaveHotelToList(ctx, list.ID, "hotel-1"))

	require.NoError(t, repo.RemoveHotelFromList(ctx, list.ID, "hotel-1"))
	// Removing a pair that is already gone is a silent no-op.
	require.NoError(t, repo.RemoveHotelFromList(ctx, list.ID, "hotel-1"))

	saved, err := repo.IsHotelSaved(ctx, "user-1", "hotel-1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestIsHotelSaved_AnyList(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")
	seedProfile(t, gdb, "user-2", "bystander")
	seedHotel(t, gdb, db.Hotel{ID: "hotel-1", Name: "The Siren"})

	custom, err := repo.CreateList(ctx, "user-1", "Winter escapes")
	require.NoError(t, err)
	require.NoError(t, repo.SaveHotelToList(ctx, custom.ID, "hotel-1"))

	// Saved in a non-default list still counts for the owner.
	saved, err := repo.IsHotelSaved(ctx, "user-1", "hotel-1")
	require.NoError(t, err)
	assert.True(t, saved)

	// Another user's lists are not consulted.
	saved, err = repo.IsHotelSaved(ctx, "user-2", "hotel-1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestGetUserLists_OrderAndCounts(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")
	seedHotel(t, gdb, db.Hotel{ID: "hotel-1", Name: "The Siren"})
	seedHotel(t, gdb, db.Hotel{ID: "hotel-2", Name: "The Wren"})

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, gdb.Create(&db.List{ID: "list-older", UserID: "user-1", Name: "Older", CreatedAt: base}).Error)
	require.NoError(t, gdb.Create(&db.List{ID: "list-newer", UserID: "user-1", Name: "Newer", CreatedAt: base.Add(time.Hour)}).Error)
	require.NoError(t, gdb.Create(&db.List{ID: "list-default", UserID: "user-1", Name: "Saved", IsDefault: true, CreatedAt: base.Add(-time.Hour)}).Error)

	require.NoError(t, repo.SaveHotelToList(ctx, "list-older", "hotel-1"))
	require.NoError(t, repo.SaveHotelToList(ctx, "list-older", "hotel-2"))

	lists, err := repo.GetUserLists(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, lists, 3)

	// Default first even though it is the oldest, then newest first.
	assert.Equal(t, "list-default", lists[0].ID)
	assert.Equal(t, "list-newer", lists[1].ID)
	assert.Equal(t, "list-older", lists[2].ID)

	assert.Equal(t, int64(0), lists[0].HotelCount)
	assert.Equal(t, int64(0), lists[1].HotelCount)
	assert.Equal(t, int64(2), lists[2].HotelCount)
}

func TestGetListWithHotels(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	listRepo := repository.NewListRepository(gdb)

	seedProfile(t, gdb, "user-1", "collector")
	seedProfile(t, gdb, "user-2", "critic")
	seedHotel(t, gdb, db.Hotel{ID: "hotel-1", Name: "The Siren"})
	seedHotel(t, gdb, db.Hotel{ID: "hotel-2", Name: "The Wren"})

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedReviewAt(t, gdb, "review-1", "user-2", "hotel-1", 4, base)
	seedReviewAt(t, gdb, "review-2", "user-1", "hotel-1", 2, base.Add(time.Minute))

	list, err := listRepo.GetOrCreateDefaultList(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&db.ListItem{ListID: list.ID, HotelID: "hotel-2", CreatedAt: base}).Error)
	require.NoError(t, gdb.Create(&db.ListItem{ListID: list.ID, HotelID: "hotel-1", CreatedAt: base.Add(time.Hour)}).Error)

	got, err := listRepo.GetListWithHotels(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, got.List.ID)
	require.Len(t, got.Hotels, 2)

	// Insertion order, full detail, and membership implies saved.
	assert.Equal(t, "hotel-2", got.Hotels[0].ID)
	assert.Equal(t, "hotel-1", got.Hotels[1].ID)
	assert.True(t, got.Hotels[0].IsSaved)
	assert.True(t, got.Hotels[1].IsSaved)
	require.NotNil(t, got.Hotels[1].AvgRating)
	assert.InDelta(t, 3.0, *got.Hotels[1].AvgRating, 0.0001)
	assert.Equal(t, int64(2), got.Hotels[1].ReviewCount)
	assert.Nil(t, got.Hotels[0].AvgRating)
}

func TestGetListWithHotels_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewListRepository(setupTestDB(t))

	_, err := repo.GetListWithHotels(ctx, "ghost")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}
