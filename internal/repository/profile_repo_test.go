package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/repository"
	"github.com/valoreapp/valore-backend/internal/store"
)

func TestCreateAndGetProfile(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	created, err := repo.CreateProfile(ctx, "user-1", store.ProfileUpdate{
		Username: store.Set(ptr("sofia.wanders")),
		FullName: store.Set(ptr("Sofia Laurent")),
		HomeCity: store.Set(ptr("Paris")),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.ID)
	assert.Equal(t, "sofia.wanders", *created.Username)

	fetched, err := repo.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Sofia Laurent", *fetched.FullName)
	assert.Equal(t, "Paris", *fetched.HomeCity)
	assert.Nil(t, fetched.Bio)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))

	_, err := repo.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestCreateProfile_RequiresID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))

	_, err := repo.CreateProfile(ctx, "", store.ProfileUpdate{})
	assert.ErrorIs(t, err, svcErr.ErrInvalid)
}

func TestUpdateProfile_SparsePatch(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	_, err := repo.CreateProfile(ctx, "user-1", store.ProfileUpdate{
		Username: store.Set(ptr("kenji.checksin")),
		FullName: store.Set(ptr("Kenji Mori")),
		Bio:      store.Set(ptr("old bio")),
	})
	require.NoError(t, err)

	// Patch only bio: every other field keeps its prior value.
	updated, err := repo.UpdateProfile(ctx, "user-1", store.ProfileUpdate{
		Bio: store.Set(ptr("ryokan purist")),
	})
	require.NoError(t, err)
	assert.Equal(t, "ryokan purist", *updated.Bio)
	assert.Equal(t, "kenji.checksin", *updated.Username)
	assert.Equal(t, "Kenji Mori", *updated.FullName)
}

func TestUpdateProfile_ClearField(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))

	_, err := repo.CreateProfile(ctx, "user-1", store.ProfileUpdate{
		Bio:      store.Set(ptr("temporary")),
		FullName: store.Set(ptr("Amelia Price")),
	})
	require.NoError(t, err)

	// A supplied nil clears the column; unset fields stay.
	updated, err := repo.UpdateProfile(ctx, "user-1", store.ProfileUpdate{
		Bio: store.Set[*string](nil),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Bio)
	assert.Equal(t, "Amelia Price", *updated.FullName)
}

func TestUpdateProfile_MissingRow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))

	_, err := repo.UpdateProfile(ctx, "ghost", store.ProfileUpdate{
		Bio: store.Set(ptr("x")),
	})
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestGetProfileWithStats_ZeroDefaults(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)
	seedProfile(t, gdb, "user-1", "loner")

	stats, err := repo.GetProfileWithStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.ReviewCount)
	assert.Equal(t, int64(0), stats.FollowerCount)
	assert.Equal(t, int64(0), stats.FollowingCount)
	assert.Equal(t, int64(0), stats.SavedCount)
}

func TestGetProfileWithStats_Counts(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	seedProfile(t, gdb, "user-1", "subject")
	seedProfile(t, gdb, "user-2", "fan")
	seedProfile(t, gdb, "user-3", "idol")
	seedHotel(t, gdb, db.Hotel{ID: "hotel-1", Name: "The Siren"})
	seedHotel(t, gdb, db.Hotel{ID: "hotel-2", Name: "The Wren"})

	require.NoError(t, gdb.Create(&db.Review{ID: "review-1", UserID: "user-1", HotelID: "hotel-1", RatingOverall: 5}).Error)
	require.NoError(t, gdb.Create(&db.Follow{FollowerID: "user-2", FollowingID: "user-1"}).Error)
	require.NoError(t, gdb.Create(&db.Follow{FollowerID: "user-1", FollowingID: "user-3"}).Error)

	require.NoError(t, gdb.Create(&db.List{ID: "list-1", UserID: "user-1", Name: "Saved", IsDefault: true}).Error)
	require.NoError(t, gdb.Create(&db.List{ID: "list-2", UserID: "user-1", Name: "Islands"}).Error)
	require.NoError(t, gdb.Create(&db.ListItem{ListID: "list-1", HotelID: "hotel-1"}).Error)
	require.NoError(t, gdb.Create(&db.ListItem{ListID: "list-2", HotelID: "hotel-2"}).Error)

	stats, err := repo.GetProfileWithStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ReviewCount)
	assert.Equal(t, int64(1), stats.FollowerCount)
	assert.Equal(t, int64(1), stats.FollowingCount)
	// Saved-hotel count spans all of the user's lists.
	assert.Equal(t, int64(2), stats.SavedCount)
}
