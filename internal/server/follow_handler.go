package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) followUser(c *gin.Context) {
	followerID, followingID := c.Param("followerID"), c.Param("followingID")
	if err := s.follows.FollowUser(c.Request.Context(), followerID, followingID); err != nil {
		s.respondError(c, err)
		return
	}
	s.analytics.Record(c.Request.Context(), &followerID, "user_followed", map[string]any{
		"following_id": followingID,
	})
	c.Status(http.StatusNoContent)
}

func (s *Server) unfollowUser(c *gin.Context) {
	if err := s.follows.UnfollowUser(c.Request.Context(), c.Param("followerID"), c.Param("followingID")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) isFollowing(c *gin.Context) {
	following, err := s.follows.IsFollowing(c.Request.Context(), c.Param("followerID"), c.Param("followingID"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

func (s *Server) getFollowers(c *gin.Context) {
	profiles, err := s.follows.GetFollowers(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (s *Server) getFollowing(c *gin.Context) {
	profiles, err := s.follows.GetFollowing(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}
