package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

// FollowRepository implements store.FollowStore.
type FollowRepository struct {
	db *gorm.DB
}

var _ store.FollowStore = (*FollowRepository)(nil)

func NewFollowRepository(database *gorm.DB) *FollowRepository {
	return &FollowRepository{db: database}
}

// FollowUser is idempotent: a duplicate follow is a silent no-op.
// Following yourself is rejected.
func (r *FollowRepository) FollowUser(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return svcErr.Invalid("cannot follow yourself")
	}
	follow := db.Follow{FollowerID: followerID, FollowingID: followingID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
	return svcErr.Map(err)
}

// UnfollowUser is idempotent: removing an absent follow is a silent
// no-op.
func (r *FollowRepository) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&db.Follow{}).Error
	return svcErr.Map(err)
}

// GetFollowers returns the profiles following userID, in follow
// insertion order.
func (r *FollowRepository) GetFollowers(ctx context.Context, userID string) ([]db.Profile, error) {
	profiles := []db.Profile{}
	err := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Joins("JOIN follows ON follows.follower_id = profiles.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at ASC, profiles.id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return profiles, nil
}

// GetFollowing returns the profiles userID follows, in follow insertion
// order.
func (r *FollowRepository) GetFollowing(ctx context.Context, userID string) ([]db.Profile, error) {
	profiles := []db.Profile{}
	err := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Joins("JOIN follows ON follows.following_id = profiles.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at ASC, profiles.id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return profiles, nil
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, svcErr.Map(err)
	}
	return count > 0, nil
}

// FollowingIDs returns just the ids userID follows. Feed assembly uses
// this to decide whether any review query is needed at all.
func (r *FollowRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return ids, nil
}
