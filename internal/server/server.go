// Package server exposes the entity stores over an authenticated HTTP
// JSON API. This is the hosted-backend variant of the store contract:
// inputs, outputs and error shapes are identical to the embedded
// implementation, only the transport differs.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valoreapp/valore-backend/internal/analytics"
	"github.com/valoreapp/valore-backend/internal/app"
	"github.com/valoreapp/valore-backend/internal/config"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/feed"
	"github.com/valoreapp/valore-backend/internal/repository"
	"github.com/valoreapp/valore-backend/internal/store"
)

type Server struct {
	cfg       *config.Config
	log       *slog.Logger
	analytics *analytics.Recorder

	profiles store.ProfileStore
	hotels   store.HotelStore
	reviews  store.ReviewStore
	lists    store.ListStore
	follows  store.FollowStore
	feed     store.FeedStore
}

// New wires the embedded stores behind the HTTP surface.
func New(appCtx *app.AppContext, cfg *config.Config) *Server {
	followRepo := repository.NewFollowRepository(appCtx.DB)
	reviewRepo := repository.NewReviewRepository(appCtx.DB)

	return &Server{
		cfg:       cfg,
		log:       appCtx.Logger,
		analytics: appCtx.Analytics,
		profiles:  repository.NewProfileRepository(appCtx.DB),
		hotels:    repository.NewHotelRepository(appCtx.DB),
		reviews:   reviewRepo,
		lists:     repository.NewListRepository(appCtx.DB),
		follows:   followRepo,
		feed:      feed.NewAssembler(followRepo, reviewRepo),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	v1.Use(RequireAuth(s.cfg.Auth.JWTSecret))
	{
		profiles := v1.Group("/profiles")
		{
			profiles.POST("", s.createProfile)
			profiles.GET("/:id", s.getProfile)
			profiles.PATCH("/:id", s.updateProfile)
			profiles.GET("/:id/stats", s.getProfileStats)
			profiles.GET("/:id/reviews", s.getUserReviews)
			profiles.GET("/:id/followers", s.getFollowers)
			profiles.GET("/:id/following", s.getFollowing)
			profiles.GET("/:id/feed", s.getFeed)
			profiles.GET("/:id/lists", s.getUserLists)
			profiles.POST("/:id/lists", s.createList)
			profiles.POST("/:id/lists/default", s.getOrCreateDefaultList)
			profiles.GET("/:id/saved/:hotelID", s.isHotelSaved)
		}

		hotels := v1.Group("/hotels")
		{
			hotels.GET("", s.listHotels)
			hotels.GET("/:id", s.getHotel)
			hotels.GET("/:id/reviews", s.getHotelReviews)
		}

		v1.GET("/tags", s.listTags)

		reviews := v1.Group("/reviews")
		{
			reviews.POST("", s.createReview)
			reviews.POST("/:id/photos", s.addReviewPhotos)
		}

		lists := v1.Group("/lists")
		{
			lists.GET("/:id", s.getListWithHotels)
			lists.PUT("/:id/hotels/:hotelID", s.saveHotelToList)
			lists.DELETE("/:id/hotels/:hotelID", s.removeHotelFromList)
		}

		follows := v1.Group("/follows")
		{
			follows.PUT("/:followerID/:followingID", s.followUser)
			follows.DELETE("/:followerID/:followingID", s.unfollowUser)
			follows.GET("/:followerID/:followingID", s.isFollowing)
		}
	}

	return router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.HTTP.Host + ":" + s.cfg.HTTP.Port
	s.log.Info("starting http server", "addr", addr)
	return s.Router().Run(addr)
}

// respondError translates an error kind into the API's status code and
// a JSON body the remote client maps back to the same kind.
func (s *Server) respondError(c *gin.Context, err error) {
	status := svcErr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
