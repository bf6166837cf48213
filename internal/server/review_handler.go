package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

func (s *Server) createReview(c *gin.Context) {
	var input store.NewReview
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, svcErr.Invalid("malformed json body"))
		return
	}

	review, err := s.reviews.CreateReview(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.analytics.Record(c.Request.Context(), &review.UserID, "review_created", map[string]any{
		"hotel_id": review.HotelID,
		"rating":   review.RatingOverall,
	})
	c.JSON(http.StatusCreated, review)
}

func (s *Server) addReviewPhotos(c *gin.Context) {
	var body struct {
		URLs []string `json:"urls"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.respondError(c, svcErr.Invalid("malformed json body"))
		return
	}

	photos, err := s.reviews.AddReviewPhotos(c.Request.Context(), c.Param("id"), body.URLs)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photos)
}
