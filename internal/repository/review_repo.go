package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/ident"
	"github.com/valoreapp/valore-backend/internal/store"
)

// ReviewRepository implements store.ReviewStore.
type ReviewRepository struct {
	db *gorm.DB
}

var _ store.ReviewStore = (*ReviewRepository)(nil)

func NewReviewRepository(database *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: database}
}

// CreateReview inserts one review. Rating bounds are validated before
// the insert is attempted; a second review for the same (user, hotel)
// pair is rejected by the uniqueness constraint and surfaces as a
// duplicate error.
func (r *ReviewRepository) CreateReview(ctx context.Context, input store.NewReview) (*db.Review, error) {
	if input.UserID == "" || input.HotelID == "" {
		return nil, svcErr.Invalid("user_id and hotel_id are required")
	}
	if input.RatingOverall < 1 || input.RatingOverall > 5 {
		return nil, svcErr.Invalid("rating_overall must be between 1 and 5, got %d", input.RatingOverall)
	}
	for _, opt := range []struct {
		name  string
		value *int
	}{
		{"rating_aesthetic", input.RatingAesthetic},
		{"rating_service", input.RatingService},
		{"rating_amenities", input.RatingAmenities},
	} {
		if opt.value != nil && (*opt.value < 1 || *opt.value > 5) {
			return nil, svcErr.Invalid("%s must be between 1 and 5, got %d", opt.name, *opt.value)
		}
	}

	review := db.Review{
		ID:              ident.NewID(),
		UserID:          input.UserID,
		HotelID:         input.HotelID,
		RatingOverall:   input.RatingOverall,
		RatingAesthetic: input.RatingAesthetic,
		RatingService:   input.RatingService,
		RatingAmenities: input.RatingAmenities,
		Title:           input.Title,
		Body:            input.Body,
		TripType:        input.TripType,
		StayDate:        input.StayDate,
	}
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	return &review, nil
}

// AddReviewPhotos inserts one photo per URL in a single transaction,
// preserving input order in the returned rows.
func (r *ReviewRepository) AddReviewPhotos(ctx context.Context, reviewID string, urls []string) ([]db.ReviewPhoto, error) {
	photos := make([]db.ReviewPhoto, 0, len(urls))
	if len(urls) == 0 {
		return photos, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, url := range urls {
			photo := db.ReviewPhoto{
				ID:       ident.NewID(),
				ReviewID: reviewID,
				URL:      url,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
			photos = append(photos, photo)
		}
		return nil
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return photos, nil
}

// GetHotelReviews returns a hotel's reviews, most recent first.
func (r *ReviewRepository) GetHotelReviews(ctx context.Context, hotelID string) ([]store.ReviewWithDetails, error) {
	var reviews []db.Review
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return r.hydrateReviews(ctx, reviews)
}

// GetUserReviews returns a user's reviews, most recent first.
func (r *ReviewRepository) GetUserReviews(ctx context.Context, userID string) ([]store.ReviewWithDetails, error) {
	var reviews []db.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return r.hydrateReviews(ctx, reviews)
}

// RecentByAuthors returns the newest reviews written by any of the
// given authors, capped at limit. Feed assembly uses this; the caller
// is responsible for short-circuiting an empty author set.
func (r *ReviewRepository) RecentByAuthors(ctx context.Context, authorIDs []string, limit int) ([]store.ReviewWithDetails, error) {
	if len(authorIDs) == 0 {
		return []store.ReviewWithDetails{}, nil
	}

	var reviews []db.Review
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return r.hydrateReviews(ctx, reviews)
}

// hydrateReviews attaches the narrowed author view, the narrowed hotel
// view and the full photo list to each review, using grouped lookups
// over the batch.
func (r *ReviewRepository) hydrateReviews(ctx context.Context, reviews []db.Review) ([]store.ReviewWithDetails, error) {
	details := make([]store.ReviewWithDetails, 0, len(reviews))
	if len(reviews) == 0 {
		return details, nil
	}

	reviewIDs := make([]string, 0, len(reviews))
	userIDs := make([]string, 0, len(reviews))
	hotelIDs := make([]string, 0, len(reviews))
	for _, rv := range reviews {
		reviewIDs = append(reviewIDs, rv.ID)
		userIDs = append(userIDs, rv.UserID)
		hotelIDs = append(hotelIDs, rv.HotelID)
	}

	var userRows []db.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&userRows).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	users := make(map[string]store.UserSummary, len(userRows))
	for _, p := range userRows {
		users[p.ID] = store.UserSummary{
			ID:        p.ID,
			Username:  p.Username,
			FullName:  p.FullName,
			AvatarURL: p.AvatarURL,
		}
	}

	var hotelRows []db.Hotel
	if err := r.db.WithContext(ctx).Where("id IN ?", hotelIDs).Find(&hotelRows).Error; err != nil {
		return nil, svcErr.Map(err)
	}
	hotels := make(map[string]store.HotelSummary, len(hotelRows))
	for _, h := range hotelRows {
		hotels[h.ID] = store.HotelSummary{
			ID:            h.ID,
			Name:          h.Name,
			City:          h.City,
			Country:       h.Country,
			CoverImageURL: h.CoverImageURL,
		}
	}

	var photoRows []db.ReviewPhoto
	err := r.db.WithContext(ctx).
		Where("review_id IN ?", reviewIDs).
		Order("created_at ASC, id ASC").
		Find(&photoRows).Error
	if err != nil {
		return nil, svcErr.Map(err)
	}
	photos := make(map[string][]db.ReviewPhoto, len(reviews))
	for _, p := range photoRows {
		photos[p.ReviewID] = append(photos[p.ReviewID], p)
	}

	for _, rv := range reviews {
		d := store.ReviewWithDetails{
			Review: rv,
			User:   users[rv.UserID],
			Hotel:  hotels[rv.HotelID],
			Photos: []db.ReviewPhoto{},
		}
		if ps, ok := photos[rv.ID]; ok {
			d.Photos = ps
		}
		details = append(details, d)
	}
	return details, nil
}
