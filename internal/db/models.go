package db

import (
	"time"
)

// Profile is an account's public profile. The id is supplied by the
// caller at creation time (account creation assigns it) and is
// immutable afterwards.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  *string   `gorm:"uniqueIndex;size:64" json:"username"`
	FullName  *string   `gorm:"size:128" json:"full_name"`
	AvatarURL *string   `gorm:"size:512" json:"avatar_url"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	HomeCity  *string   `gorm:"size:128" json:"home_city"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Hotel is a property in the catalog. PlaceID is the external-source
// dedup key and unique when present.
type Hotel struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	City          *string   `gorm:"size:128" json:"city"`
	Country       *string   `gorm:"size:128" json:"country"`
	Address       *string   `gorm:"size:512" json:"address"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	PlaceID       *string   `gorm:"uniqueIndex;size:255" json:"place_id"`
	WebsiteURL    *string   `gorm:"size:512" json:"website_url"`
	Phone         *string   `gorm:"size:64" json:"phone"`
	PriceTier     *string   `gorm:"size:8" json:"price_tier"`
	CoverImageURL *string   `gorm:"size:512" json:"cover_image_url"`
	Description   *string   `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type HotelTag struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

// HotelTagMap links hotels and tags. Composite PK keeps the pair unique.
type HotelTagMap struct {
	HotelID string `gorm:"primaryKey;size:36" json:"hotel_id"`
	TagID   string `gorm:"primaryKey;size:36" json:"tag_id"`

	Hotel Hotel    `gorm:"foreignKey:HotelID;references:ID" json:"-"`
	Tag   HotelTag `gorm:"foreignKey:TagID;references:ID" json:"-"`
}

func (HotelTagMap) TableName() string { return "hotel_tag_map" }

// Review is one user's review of one hotel.
//
// Constraints:
//   - (user_id, hotel_id) unique: at most one review per user per hotel.
//   - rating_overall required, 1..5; sub-ratings optional, 1..5 when set.
type Review struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:36;not null;uniqueIndex:idx_reviews_user_hotel;index" json:"user_id"`
	HotelID         string    `gorm:"size:36;not null;uniqueIndex:idx_reviews_user_hotel;index" json:"hotel_id"`
	RatingOverall   int       `gorm:"not null;check:rating_overall >= 1 AND rating_overall <= 5" json:"rating_overall"`
	RatingAesthetic *int      `gorm:"check:rating_aesthetic >= 1 AND rating_aesthetic <= 5" json:"rating_aesthetic"`
	RatingService   *int      `gorm:"check:rating_service >= 1 AND rating_service <= 5" json:"rating_service"`
	RatingAmenities *int      `gorm:"check:rating_amenities >= 1 AND rating_amenities <= 5" json:"rating_amenities"`
	Title           *string   `gorm:"size:255" json:"title"`
	Body            *string   `gorm:"type:text" json:"body"`
	TripType        *string   `gorm:"size:32" json:"trip_type"`
	StayDate        *string   `gorm:"size:32" json:"stay_date"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	User  Profile `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Hotel Hotel   `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

type ReviewPhoto struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ReviewID  string    `gorm:"size:36;not null;index" json:"review_id"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Review Review `gorm:"foreignKey:ReviewID;references:ID" json:"-"`
}

// List is a user-owned collection of saved hotels. At most one list per
// user carries IsDefault; that invariant is enforced by the list store,
// not by a uniqueness constraint.
type List struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User Profile `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

type ListItem struct {
	ListID    string    `gorm:"primaryKey;size:36" json:"list_id"`
	HotelID   string    `gorm:"primaryKey;size:36" json:"hotel_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	List  List  `gorm:"foreignKey:ListID;references:ID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

// Follow links two profiles. Composite PK makes re-follow a conflict,
// which the follow store turns into a no-op.
type Follow struct {
	FollowerID  string    `gorm:"primaryKey;size:36" json:"follower_id"`
	FollowingID string    `gorm:"primaryKey;size:36" json:"following_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Follower  Profile `gorm:"foreignKey:FollowerID;references:ID" json:"-"`
	Following Profile `gorm:"foreignKey:FollowingID;references:ID" json:"-"`
}

// Event is a best-effort analytics record. Writes to it must never fail
// a user-facing operation.
type Event struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    *string   `gorm:"size:36;index" json:"user_id"`
	EventName string    `gorm:"size:64;not null;index" json:"event_name"`
	Payload   string    `gorm:"type:text" json:"payload"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
