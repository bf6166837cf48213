package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

// ProfileRepository implements store.ProfileStore against the embedded
// database.
type ProfileRepository struct {
	db *gorm.DB
}

var _ store.ProfileStore = (*ProfileRepository)(nil)

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*db.Profile, error) {
	var profile db.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	return &profile, nil
}

// CreateProfile inserts a new profile. The caller supplies the id:
// profile creation is coupled to account creation, not store-assigned.
func (r *ProfileRepository) CreateProfile(ctx context.Context, id string, fields store.ProfileUpdate) (*db.Profile, error) {
	if id == "" {
		return nil, svcErr.Invalid("profile id is required")
	}

	profile := db.Profile{ID: id}
	if v, ok := fields.Username.Get(); ok {
		profile.Username = v
	}
	if v, ok := fields.FullName.Get(); ok {
		profile.FullName = v
	}
	if v, ok := fields.AvatarURL.Get(); ok {
		profile.AvatarURL = v
	}
	if v, ok := fields.Bio.Get(); ok {
		profile.Bio = v
	}
	if v, ok := fields.HomeCity.Get(); ok {
		profile.HomeCity = v
	}

	if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	return &profile, nil
}

// UpdateProfile applies a sparse patch: only supplied fields change,
// everything else keeps its prior value. Fails with not-found when no
// row matches id.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, id string, fields store.ProfileUpdate) (*db.Profile, error) {
	changes := profileChanges(fields)

	var profile db.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, "id = ?", id).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&profile).Updates(changes).Error; err != nil {
			return err
		}
		return tx.First(&profile, "id = ?", id).Error
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &profile, nil
}

// GetProfileWithStats joins four independent scalar counts onto the
// profile. All counts are 0, never null, when no related rows exist.
func (r *ProfileRepository) GetProfileWithStats(ctx context.Context, id string) (*store.ProfileWithStats, error) {
	var profile db.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, svcErr.Map(err)
	}

	stats := store.ProfileWithStats{Profile: profile}
	q := r.db.WithContext(ctx)

	if err := q.Model(&db.Review{}).Where("user_id = ?", id).Count(&stats.ReviewCount).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	if err := q.Model(&db.Follow{}).Where("following_id = ?", id).Count(&stats.FollowerCount).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	if err := q.Model(&db.Follow{}).Where("follower_id = ?", id).Count(&stats.FollowingCount).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	err := q.Model(&db.ListItem{}).
		Joins("JOIN lists ON lists.id = list_items.list_id").
		Where("lists.user_id = ?", id).
		Count(&stats.SavedCount).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}

	return &stats, nil
}

// profileChanges turns a sparse patch into a column update set. A
// supplied nil pointer clears the column to NULL.
func profileChanges(fields store.ProfileUpdate) map[string]any {
	changes := map[string]any{}
	if v, ok := fields.Username.Get(); ok {
		changes["username"] = v
	}
	if v, ok := fields.FullName.Get(); ok {
		changes["full_name"] = v
	}
	if v, ok := fields.AvatarURL.Get(); ok {
		changes["avatar_url"] = v
	}
	if v, ok := fields.Bio.Get(); ok {
		changes["bio"] = v
	}
	if v, ok := fields.HomeCity.Get(); ok {
		changes["home_city"] = v
	}
	return changes
}
