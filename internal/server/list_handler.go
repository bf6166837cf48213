package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	svcErr "github.com/valoreapp/valore-backend/internal/errors"
)

func (s *Server) getUserLists(c *gin.Context) {
	lists, err := s.lists.GetUserLists(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (s *Server) createList(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.respondError(c, svcErr.Invalid("malformed json body"))
		return
	}

	list, err := s.lists.CreateList(c.Request.Context(), c.Param("id"), body.Name)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (s *Server) getOrCreateDefaultList(c *gin.Context) {
	list, err := s.lists.GetOrCreateDefaultList(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getListWithHotels(c *gin.Context) {
	list, err := s.lists.GetListWithHotels(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) saveHotelToList(c *gin.Context) {
	listID, hotelID := c.Param("id"), c.Param("hotelID")
	if err := s.lists.SaveHotelToList(c.Request.Context(), listID, hotelID); err != nil {
		s.respondError(c, err)
		return
	}
	s.analytics.Record(c.Request.Context(), nil, "hotel_saved", map[string]any{
		"list_id":  listID,
		"hotel_id": hotelID,
	})
	c.Status(http.StatusNoContent)
}

func (s *Server) removeHotelFromList(c *gin.Context) {
	if err := s.lists.RemoveHotelFromList(c.Request.Context(), c.Param("id"), c.Param("hotelID")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) isHotelSaved(c *gin.Context) {
	saved, err := s.lists.IsHotelSaved(c.Request.Context(), c.Param("id"), c.Param("hotelID"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
