// Package store declares the data-access contract shared by the
// embedded implementation (internal/repository) and the remote one
// (internal/client). The rest of the application only talks to these
// interfaces; no raw queries leak upward.
package store

import (
	"context"

	"github.com/valoreapp/valore-backend/internal/db"
)

// Option carries a patch value together with whether the caller
// supplied it. It keeps "leave unchanged" (unset) distinguishable from
// "set to this value" — including setting a nullable column to NULL via
// Set with a nil pointer.
type Option[T any] struct {
	value T
	valid bool
}

func Set[T any](v T) Option[T] { return Option[T]{value: v, valid: true} }

// Get reports the supplied value, if any.
func (o Option[T]) Get() (T, bool) { return o.value, o.valid }

// Valid reports whether the field was supplied.
func (o Option[T]) Valid() bool { return o.valid }

// ProfileUpdate is a sparse patch: unset fields leave the column
// untouched.
type ProfileUpdate struct {
	Username  Option[*string]
	FullName  Option[*string]
	AvatarURL Option[*string]
	Bio       Option[*string]
	HomeCity  Option[*string]
}

// Bounds is an inclusive geographic bounding box.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// HotelFilters narrows GetHotels. Zero values mean "no filter".
type HotelFilters struct {
	// Query is a case-insensitive substring match on name, city and
	// country.
	Query string `json:"query,omitempty"`
	// Bounds restricts lat to [South, North] and lng to [West, East].
	Bounds *Bounds `json:"bounds,omitempty"`
	// PriceTiers is a membership filter ("$".."$$$$").
	PriceTiers []string `json:"price_tiers,omitempty"`
}

// UserSummary is the narrowed profile view embedded in other results.
// It deliberately omits bio, home city and timestamps.
type UserSummary struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// HotelSummary is the narrowed hotel view embedded in review results.
type HotelSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	CoverImageURL *string `json:"cover_image_url"`
}

// HotelWithDetails enriches a hotel with its tags and review
// aggregates. AvgRating is nil when the hotel has no reviews.
//
// IsSaved is NOT populated by HotelStore queries: the hotel query stays
// viewer-agnostic. Every caller that renders saved state must merge it
// afterwards (ListStore.IsHotelSaved); GetListWithHotels is the one
// path that sets it, unconditionally true, since list membership proves
// it.
type HotelWithDetails struct {
	db.Hotel
	Tags        []db.HotelTag `json:"tags"`
	AvgRating   *float64      `json:"avg_rating"`
	ReviewCount int64         `json:"review_count"`
	IsSaved     bool          `json:"is_saved"`
}

// ReviewWithDetails enriches a review with its author's and hotel's
// narrowed views and its full photo list.
type ReviewWithDetails struct {
	db.Review
	User   UserSummary      `json:"user"`
	Hotel  HotelSummary     `json:"hotel"`
	Photos []db.ReviewPhoto `json:"photos"`
}

// NewReview is the input to CreateReview; the store assigns the id.
type NewReview struct {
	UserID          string  `json:"user_id"`
	HotelID         string  `json:"hotel_id"`
	RatingOverall   int     `json:"rating_overall"`
	RatingAesthetic *int    `json:"rating_aesthetic"`
	RatingService   *int    `json:"rating_service"`
	RatingAmenities *int    `json:"rating_amenities"`
	Title           *string `json:"title"`
	Body            *string `json:"body"`
	TripType        *string `json:"trip_type"`
	StayDate        *string `json:"stay_date"`
}

type ListWithCount struct {
	db.List
	HotelCount int64 `json:"hotel_count"`
}

type ListWithHotels struct {
	db.List
	Hotels []HotelWithDetails `json:"hotels"`
}

type ProfileWithStats struct {
	db.Profile
	ReviewCount    int64 `json:"review_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	SavedCount     int64 `json:"saved_count"`
}

// FeedItem is a followee's review paired with that followee's narrowed
// profile.
type FeedItem struct {
	Review ReviewWithDetails `json:"review"`
	Friend UserSummary       `json:"friend"`
}

type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*db.Profile, error)
	CreateProfile(ctx context.Context, id string, fields ProfileUpdate) (*db.Profile, error)
	UpdateProfile(ctx context.Context, id string, fields ProfileUpdate) (*db.Profile, error)
	GetProfileWithStats(ctx context.Context, id string) (*ProfileWithStats, error)
}

type HotelStore interface {
	// GetHotels returns the filtered catalog in name-ascending order.
	// No pagination: the dataset is small and local.
	GetHotels(ctx context.Context, filters HotelFilters) ([]HotelWithDetails, error)
	GetHotel(ctx context.Context, id string) (*HotelWithDetails, error)
	GetAllTags(ctx context.Context) ([]db.HotelTag, error)
}

type ReviewStore interface {
	CreateReview(ctx context.Context, input NewReview) (*db.Review, error)
	// AddReviewPhotos persists one photo per URL, preserving input
	// order, atomically.
	AddReviewPhotos(ctx context.Context, reviewID string, urls []string) ([]db.ReviewPhoto, error)
	GetHotelReviews(ctx context.Context, hotelID string) ([]ReviewWithDetails, error)
	GetUserReviews(ctx context.Context, userID string) ([]ReviewWithDetails, error)
}

type ListStore interface {
	GetUserLists(ctx context.Context, userID string) ([]ListWithCount, error)
	GetOrCreateDefaultList(ctx context.Context, userID string) (*db.List, error)
	CreateList(ctx context.Context, userID, name string) (*db.List, error)
	// SaveHotelToList is idempotent: re-saving is a silent no-op.
	SaveHotelToList(ctx context.Context, listID, hotelID string) error
	// RemoveHotelFromList is idempotent: removing an absent pair is a
	// silent no-op.
	RemoveHotelFromList(ctx context.Context, listID, hotelID string) error
	// IsHotelSaved reports membership in ANY of the user's lists.
	IsHotelSaved(ctx context.Context, userID, hotelID string) (bool, error)
	GetListWithHotels(ctx context.Context, listID string) (*ListWithHotels, error)
}

type FollowStore interface {
	// FollowUser is idempotent; a self-follow is rejected as invalid.
	FollowUser(ctx context.Context, followerID, followingID string) error
	UnfollowUser(ctx context.Context, followerID, followingID string) error
	GetFollowers(ctx context.Context, userID string) ([]db.Profile, error)
	GetFollowing(ctx context.Context, userID string) ([]db.Profile, error)
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
}

type FeedStore interface {
	// GetFeed returns the newest reviews authored by the user's
	// followees, capped at 50; an empty slice when they follow nobody.
	GetFeed(ctx context.Context, userID string) ([]FeedItem, error)
}
