package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/ident"
	"github.com/valoreapp/valore-backend/internal/store"
)

// defaultListName is the name given to a user's auto-created save
// target.
const defaultListName = "Saved"

// ListRepository implements store.ListStore.
type ListRepository struct {
	db *gorm.DB
}

var _ store.ListStore = (*ListRepository)(nil)

func NewListRepository(database *gorm.DB) *ListRepository {
	return &ListRepository{db: database}
}

// GetUserLists returns a user's lists with item counts, default list
// first, then newest first.
func (r *ListRepository) GetUserLists(ctx context.Context, userID string) ([]store.ListWithCount, error) {
	lists := []store.ListWithCount{}
	err := r.db.WithContext(ctx).
		Model(&db.List{}).
		Select("lists.*, (SELECT COUNT(*) FROM list_items WHERE list_items.list_id = lists.id) AS hotel_count").
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return lists, nil
}

// GetOrCreateDefaultList returns the user's default list, creating it
// inside a transaction when absent so repeated calls always resolve to
// the same row and a second default-flagged list is never created.
func (r *ListRepository) GetOrCreateDefaultList(ctx context.Context, userID string) (*db.List, error) {
	var list db.List
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND is_default = ?", userID, true).First(&list).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		list = db.List{
			ID:        ident.NewID(),
			UserID:    userID,
			Name:      defaultListName,
			IsDefault: true,
		}
		return tx.Create(&list).Error
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &list, nil
}

// CreateList creates a non-default list. Names are not required to be
// unique per user.
func (r *ListRepository) CreateList(ctx context.Context, userID, name string) (*db.List, error) {
	if name == "" {
		return nil, svcErr.Invalid("list name is required")
	}
	list := db.List{
		ID:     ident.NewID(),
		UserID: userID,
		Name:   name,
	}
	if err := r.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	return &list, nil
}

// SaveHotelToList is idempotent: the composite PK turns a re-save into
// a conflict, which DoNothing swallows. Referential errors still
// propagate.
func (r *ListRepository) SaveHotelToList(ctx context.Context, listID, hotelID string) error {
	item := db.ListItem{ListID: listID, HotelID: hotelID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
	return svcErr.Map(err)
}

// RemoveHotelFromList is idempotent: deleting an absent pair is a
// silent no-op.
func (r *ListRepository) RemoveHotelFromList(ctx context.Context, listID, hotelID string) error {
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND hotel_id = ?", listID, hotelID).
		Delete(&db.ListItem{}).Error
	return svcErr.Map(err)
}

// IsHotelSaved reports whether the hotel appears in any list the user
// owns, not just the default one.
func (r *ListRepository) IsHotelSaved(ctx context.Context, userID, hotelID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.ListItem{}).
		Joins("JOIN lists ON lists.id = list_items.list_id").
		Where("lists.user_id = ? AND list_items.hotel_id = ?", userID, hotelID).
		Count(&count).Error
	if err != nil {
		return false, svcErr.Map(err)
	}
	return count > 0, nil
}

// GetListWithHotels resolves the full hotel details for every member of
// a list. Membership already proves each hotel is saved, so IsSaved is
// set unconditionally.
func (r *ListRepository) GetListWithHotels(ctx context.Context, listID string) (*store.ListWithHotels, error) {
	var list db.List
	if err := r.db.WithContext(ctx).First(&list, "id = ?", listID).Error; err != nil {
		return nil, svcErr.Map(err)
	}

	var hotels []db.Hotel
	err := r.db.WithContext(ctx).
		Model(&db.Hotel{}).
		Joins("JOIN list_items ON list_items.hotel_id = hotels.id").
		Where("list_items.list_id = ?", listID).
		Order("list_items.created_at ASC, hotels.id ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}

	details, err := hydrateHotels(ctx, r.db, hotels)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].IsSaved = true
	}

	return &store.ListWithHotels{List: list, Hotels: details}, nil
}
