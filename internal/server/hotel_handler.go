package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

// parseHotelFilters maps query params onto store.HotelFilters. The
// bounding box requires all four edges.
func parseHotelFilters(c *gin.Context) (store.HotelFilters, error) {
	filters := store.HotelFilters{
		Query:      c.Query("q"),
		PriceTiers: c.QueryArray("price_tier"),
	}

	edges := []string{"north", "south", "east", "west"}
	present := 0
	for _, edge := range edges {
		if c.Query(edge) != "" {
			present++
		}
	}
	if present == 0 {
		return filters, nil
	}
	if present != len(edges) {
		return filters, svcErr.Invalid("bounding box requires north, south, east and west")
	}

	bounds := &store.Bounds{}
	for edge, dst := range map[string]*float64{
		"north": &bounds.North,
		"south": &bounds.South,
		"east":  &bounds.East,
		"west":  &bounds.West,
	} {
		v, err := strconv.ParseFloat(c.Query(edge), 64)
		if err != nil {
			return filters, svcErr.Invalid("%s must be a number", edge)
		}
		*dst = v
	}
	filters.Bounds = bounds
	return filters, nil
}

func (s *Server) listHotels(c *gin.Context) {
	filters, err := parseHotelFilters(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	hotels, err := s.hotels.GetHotels(c.Request.Context(), filters)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (s *Server) getHotel(c *gin.Context) {
	hotel, err := s.hotels.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (s *Server) getHotelReviews(c *gin.Context) {
	reviews, err := s.reviews.GetHotelReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) listTags(c *gin.Context) {
	tags, err := s.hotels.GetAllTags(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
