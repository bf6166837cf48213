package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

// HotelRepository implements store.HotelStore. Result rows are enriched
// with tags and review aggregates; viewer-specific saved state is
// intentionally left to the caller (see store.HotelWithDetails).
type HotelRepository struct {
	db *gorm.DB
}

var _ store.HotelStore = (*HotelRepository)(nil)

func NewHotelRepository(database *gorm.DB) *HotelRepository {
	return &HotelRepository{db: database}
}

func (r *HotelRepository) GetHotels(ctx context.Context, filters store.HotelFilters) ([]store.HotelWithDetails, error) {
	q := r.db.WithContext(ctx).Model(&db.Hotel{})

	if s := strings.TrimSpace(filters.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(country) LIKE ?",
			like, like, like,
		)
	}
	if b := filters.Bounds; b != nil {
		q = q.Where(
			"lat >= ? AND lat <= ? AND lng >= ? AND lng <= ?",
			b.South, b.North, b.West, b.East,
		)
	}
	if len(filters.PriceTiers) > 0 {
		q = q.Where("price_tier IN ?", filters.PriceTiers)
	}

	var hotels []db.Hotel
	if err := q.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, svcErr.Map(err)
	}

	return hydrateHotels(ctx, r.db, hotels)
}

func (r *HotelRepository) GetHotel(ctx context.Context, id string) (*store.HotelWithDetails, error) {
	var hotel db.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error; err != nil {
		return nil, svcErr.Map(err)
	}

	details, err := hydrateHotels(ctx, r.db, []db.Hotel{hotel})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (r *HotelRepository) GetAllTags(ctx context.Context) ([]db.HotelTag, error) {
	var tags []db.HotelTag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	return tags, nil
}

// hydrateHotels attaches tags and review aggregates to a hotel batch in
// two grouped queries instead of per-row lookups. AvgRating stays nil
// for hotels with zero reviews: the average of an empty set is
// undefined, not zero. Shared with the list store's hotel resolution.
func hydrateHotels(ctx context.Context, database *gorm.DB, hotels []db.Hotel) ([]store.HotelWithDetails, error) {
	details := make([]store.HotelWithDetails, 0, len(hotels))
	if len(hotels) == 0 {
		return details, nil
	}

	ids := make([]string, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
	}

	var statRows []struct {
		HotelID     string
		AvgRating   float64
		ReviewCount int64
	}
	err := database.WithContext(ctx).
		Model(&db.Review{}).
		Select("hotel_id, AVG(rating_overall) AS avg_rating, COUNT(*) AS review_count").
		Where("hotel_id IN ?", ids).
		Group("hotel_id").
		Scan(&statRows).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}

	type hotelStats struct {
		avg   float64
		count int64
	}
	stats := make(map[string]hotelStats, len(statRows))
	for _, row := range statRows {
		stats[row.HotelID] = hotelStats{avg: row.AvgRating, count: row.ReviewCount}
	}

	var tagRows []struct {
		HotelID string
		ID      string
		Name    string
	}
	err = database.WithContext(ctx).
		Table("hotel_tag_map").
		Select("hotel_tag_map.hotel_id AS hotel_id, hotel_tags.id AS id, hotel_tags.name AS name").
		Joins("JOIN hotel_tags ON hotel_tags.id = hotel_tag_map.tag_id").
		Where("hotel_tag_map.hotel_id IN ?", ids).
		Order("hotel_tags.name ASC").
		Scan(&tagRows).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}

	tagsByHotel := make(map[string][]db.HotelTag, len(hotels))
	for _, row := range tagRows {
		tagsByHotel[row.HotelID] = append(tagsByHotel[row.HotelID], db.HotelTag{ID: row.ID, Name: row.Name})
	}

	for _, h := range hotels {
		d := store.HotelWithDetails{
			Hotel: h,
			Tags:  []db.HotelTag{},
		}
		if tags, ok := tagsByHotel[h.ID]; ok {
			d.Tags = tags
		}
		if s, ok := stats[h.ID]; ok {
			avg := s.avg
			d.AvgRating = &avg
			d.ReviewCount = s.count
		}
		details = append(details, d)
	}
	return details, nil
}
