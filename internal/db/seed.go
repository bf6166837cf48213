package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// SeedDemoData populates the schema with a fixed demo catalog of tags,
// hotels, users, reviews, lists and follows.
//
// Precondition: runs only against an empty catalog. If any hotel rows
// already exist the seed is skipped entirely, so it is safe to call on
// every startup.
func SeedDemoData(database *gorm.DB) error {
	var hotelCount int64
	if err := database.Model(&Hotel{}).Count(&hotelCount).Error; err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if hotelCount > 0 {
		log.Println("Seed skipped: catalog already populated")
		return nil
	}

	tags := []HotelTag{
		{ID: "tag-1", Name: "Luxury"},
		{ID: "tag-2", Name: "Boutique"},
		{ID: "tag-3", Name: "Eco-Luxe"},
		{ID: "tag-4", Name: "Heritage"},
		{ID: "tag-5", Name: "Beach Resort"},
		{ID: "tag-6", Name: "Wellness"},
		{ID: "tag-7", Name: "Design-Led"},
		{ID: "tag-8", Name: "Coastal Chic"},
	}

	hotels := []Hotel{
		{
			ID: "hotel-1", Name: "The Ritz Paris",
			City: ptr("Paris"), Country: ptr("France"),
			Lat: ptr(48.8682), Lng: ptr(2.3282), PriceTier: ptr("$$$$"),
			CoverImageURL: ptr("https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800"),
			Description:   ptr("Legendary palace hotel on Place Vendôme, offering timeless luxury and impeccable French elegance since 1898."),
		},
		{
			ID: "hotel-2", Name: "Aman Tokyo",
			City: ptr("Tokyo"), Country: ptr("Japan"),
			Lat: ptr(35.6853), Lng: ptr(139.7635), PriceTier: ptr("$$$$"),
			CoverImageURL: ptr("https://images.unsplash.com/photo-1590073242678-70ee3fc28e8e?w=800"),
			Description:   ptr("Urban sanctuary in Otemachi Tower with minimalist Japanese design and panoramic city views."),
		},
		{
			ID: "hotel-3", Name: "Soneva Fushi",
			City: ptr("Baa Atoll"), Country: ptr("Maldives"),
			Lat: ptr(5.1108), Lng: ptr(72.9553), PriceTier: ptr("$$$$"),
			CoverImageURL: ptr("https://images.unsplash.com/photo-1573843981267-be1999ff37cd?w=800"),
			Description:   ptr("Pioneering barefoot luxury resort with overwater villas and a no-shoes, no-news philosophy."),
		},
		{
			ID: "hotel-4", Name: "Claridge's",
			City: ptr("London"), Country: ptr("United Kingdom"),
			Lat: ptr(51.5122), Lng: ptr(-0.1467), PriceTier: ptr("$$$$"),
			CoverImageURL: ptr("https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"),
			Description:   ptr("Art Deco masterpiece in Mayfair, beloved by royalty and celebrities for over a century."),
		},
		{
			ID: "hotel-5", Name: "Six Senses Zil Pasyon",
			City: ptr("Félicité Island"), Country: ptr("Seychelles"),
			Lat: ptr(-4.3167), Lng: ptr(55.8667), PriceTier: ptr("$$$$"),
			CoverImageURL: ptr("https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800"),
			Description:   ptr("Private island retreat with dramatic granite boulders and pristine beaches."),
		},
		{
			ID: "hotel-6", Name: "The Hoxton, Paris",
			City: ptr("Paris"), Country: ptr("France"),
			Lat: ptr(48.8722), Lng: ptr(2.3425), PriceTier: ptr("$$"),
			CoverImageURL: ptr("https://images.unsplash.com/photo-1445019980597-93fa8acb246c?w=800"),
			Description:   ptr("Playful design hotel in an 18th-century residence in the 2nd arrondissement."),
		},
	}

	hotelTags := []HotelTagMap{
		{HotelID: "hotel-1", TagID: "tag-1"}, {HotelID: "hotel-1", TagID: "tag-4"},
		{HotelID: "hotel-2", TagID: "tag-1"}, {HotelID: "hotel-2", TagID: "tag-6"}, {HotelID: "hotel-2", TagID: "tag-7"},
		{HotelID: "hotel-3", TagID: "tag-3"}, {HotelID: "hotel-3", TagID: "tag-5"}, {HotelID: "hotel-3", TagID: "tag-6"},
		{HotelID: "hotel-4", TagID: "tag-1"}, {HotelID: "hotel-4", TagID: "tag-4"},
		{HotelID: "hotel-5", TagID: "tag-3"}, {HotelID: "hotel-5", TagID: "tag-5"}, {HotelID: "hotel-5", TagID: "tag-6"},
		{HotelID: "hotel-6", TagID: "tag-2"}, {HotelID: "hotel-6", TagID: "tag-7"},
	}

	profiles := []Profile{
		{ID: "user-1", Username: ptr("sofia.wanders"), FullName: ptr("Sofia Laurent"), HomeCity: ptr("Paris"), Bio: ptr("Collector of grand lobbies and quiet corners.")},
		{ID: "user-2", Username: ptr("kenji.checksin"), FullName: ptr("Kenji Mori"), HomeCity: ptr("Tokyo"), Bio: ptr("Ryokan purist, reluctant minibar critic.")},
		{ID: "user-3", Username: ptr("amelia.offgrid"), FullName: ptr("Amelia Price"), HomeCity: ptr("London"), Bio: ptr("Chasing barefoot luxury one atoll at a time.")},
	}

	reviews := []Review{
		{
			ID: "review-1", UserID: "user-1", HotelID: "hotel-1",
			RatingOverall: 5, RatingAesthetic: ptr(5), RatingService: ptr(5),
			Title: ptr("Still the benchmark"), TripType: ptr("couples"),
			Body: ptr("The bar alone is worth the stay. Service anticipates everything."),
		},
		{
			ID: "review-2", UserID: "user-2", HotelID: "hotel-2",
			RatingOverall: 5, RatingAesthetic: ptr(5), RatingAmenities: ptr(4),
			Title: ptr("Silence above the city"), TripType: ptr("work"),
			Body: ptr("The lobby's washi-paper light is unreal. Best onsen-style baths in Tokyo."),
		},
		{
			ID: "review-3", UserID: "user-3", HotelID: "hotel-3",
			RatingOverall: 4, RatingService: ptr(5),
			Title: ptr("No news, no shoes"), TripType: ptr("honeymoon"),
			Body: ptr("Slides from the villa into the lagoon. Four stars only because goodbye was hard."),
		},
		{
			ID: "review-4", UserID: "user-1", HotelID: "hotel-6",
			RatingOverall: 4, RatingAesthetic: ptr(4),
			Title: ptr("Great value for the 2nd"), TripType: ptr("friends"),
		},
	}

	lists := []List{
		{ID: "list-1", UserID: "user-1", Name: "Saved", IsDefault: true},
		{ID: "list-2", UserID: "user-1", Name: "Honeymoon ideas"},
		{ID: "list-3", UserID: "user-3", Name: "Saved", IsDefault: true},
	}

	listItems := []ListItem{
		{ListID: "list-1", HotelID: "hotel-2"},
		{ListID: "list-2", HotelID: "hotel-3"},
		{ListID: "list-2", HotelID: "hotel-5"},
		{ListID: "list-3", HotelID: "hotel-1"},
	}

	follows := []Follow{
		{FollowerID: "user-1", FollowingID: "user-2"},
		{FollowerID: "user-1", FollowingID: "user-3"},
		{FollowerID: "user-2", FollowingID: "user-1"},
		{FollowerID: "user-3", FollowingID: "user-1"},
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, batch := range []any{
			&tags, &hotels, &hotelTags, &profiles, &reviews, &lists, &listItems, &follows,
		} {
			if err := tx.Create(batch).Error; err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}
		}
		log.Printf("Seeded %d hotels, %d tags, %d users, %d reviews", len(hotels), len(tags), len(profiles), len(reviews))
		return nil
	})
}
