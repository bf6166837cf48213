package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

// decodeProfilePatch reads a sparse patch body. Only keys present in
// the JSON become supplied fields; an explicit null clears the column.
func decodeProfilePatch(r io.Reader) (id string, fields store.ProfileUpdate, err error) {
	var raw map[string]json.RawMessage
	if err = json.NewDecoder(r).Decode(&raw); err != nil {
		return "", fields, svcErr.Invalid("malformed json body")
	}

	if rawID, ok := raw["id"]; ok {
		if err = json.Unmarshal(rawID, &id); err != nil {
			return "", fields, svcErr.Invalid("id must be a string")
		}
	}

	assign := func(key string, dst *store.Option[*string]) error {
		rawVal, ok := raw[key]
		if !ok {
			return nil
		}
		var v *string
		if err := json.Unmarshal(rawVal, &v); err != nil {
			return svcErr.Invalid("%s must be a string or null", key)
		}
		*dst = store.Set(v)
		return nil
	}

	for key, dst := range map[string]*store.Option[*string]{
		"username":   &fields.Username,
		"full_name":  &fields.FullName,
		"avatar_url": &fields.AvatarURL,
		"bio":        &fields.Bio,
		"home_city":  &fields.HomeCity,
	} {
		if err = assign(key, dst); err != nil {
			return "", store.ProfileUpdate{}, err
		}
	}
	return id, fields, nil
}

func (s *Server) createProfile(c *gin.Context) {
	id, fields, err := decodeProfilePatch(c.Request.Body)
	if err != nil {
		s.respondError(c, err)
		return
	}

	profile, err := s.profiles.CreateProfile(c.Request.Context(), id, fields)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.analytics.Record(c.Request.Context(), &profile.ID, "profile_created", nil)
	c.JSON(http.StatusCreated, profile)
}

func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.profiles.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) updateProfile(c *gin.Context) {
	_, fields, err := decodeProfilePatch(c.Request.Body)
	if err != nil {
		s.respondError(c, err)
		return
	}

	profile, err := s.profiles.UpdateProfile(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) getProfileStats(c *gin.Context) {
	stats, err := s.profiles.GetProfileWithStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getUserReviews(c *gin.Context) {
	reviews, err := s.reviews.GetUserReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) getFeed(c *gin.Context) {
	items, err := s.feed.GetFeed(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
