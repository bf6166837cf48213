// Package client is the remote implementation of the store contract:
// the same operations as internal/repository, performed against a
// hosted deployment over its authenticated HTTP API. Inputs, outputs
// and error kinds match the embedded stores exactly; only the
// transport differs.
//
// The standard net/http client is used directly: the API is plain JSON
// request/response and needs no client framework.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/valoreapp/valore-backend/internal/db"
	svcErr "github.com/valoreapp/valore-backend/internal/errors"
	"github.com/valoreapp/valore-backend/internal/store"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var (
	_ store.ProfileStore = (*Client)(nil)
	_ store.HotelStore   = (*Client)(nil)
	_ store.ReviewStore  = (*Client)(nil)
	_ store.ListStore    = (*Client)(nil)
	_ store.FollowStore  = (*Client)(nil)
	_ store.FeedStore    = (*Client)(nil)
)

// New builds a client for the hosted API at baseURL (e.g.
// "https://api.valore.app"), authenticating with the given bearer
// token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// do performs one JSON request/response round trip. Error statuses are
// mapped back onto the store error kinds so callers cannot tell the
// transports apart.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote store: encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("remote store: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return svcErr.FromHTTPStatus(resp.StatusCode, apiErr.Error)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote store: decode response: %w", err)
	}
	return nil
}

// profilePatch serializes a sparse patch: only supplied fields appear
// in the JSON body, so unset fields stay untouched server-side.
func profilePatch(id string, fields store.ProfileUpdate) map[string]any {
	body := map[string]any{}
	if id != "" {
		body["id"] = id
	}
	if v, ok := fields.Username.Get(); ok {
		body["username"] = v
	}
	if v, ok := fields.FullName.Get(); ok {
		body["full_name"] = v
	}
	if v, ok := fields.AvatarURL.Get(); ok {
		body["avatar_url"] = v
	}
	if v, ok := fields.Bio.Get(); ok {
		body["bio"] = v
	}
	if v, ok := fields.HomeCity.Get(); ok {
		body["home_city"] = v
	}
	return body
}

// --- profiles ---

func (c *Client) GetProfile(ctx context.Context, id string) (*db.Profile, error) {
	var profile db.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(id), nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) CreateProfile(ctx context.Context, id string, fields store.ProfileUpdate) (*db.Profile, error) {
	var profile db.Profile
	if err := c.do(ctx, http.MethodPost, "/profiles", nil, profilePatch(id, fields), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id string, fields store.ProfileUpdate) (*db.Profile, error) {
	var profile db.Profile
	if err := c.do(ctx, http.MethodPatch, "/profiles/"+url.PathEscape(id), nil, profilePatch("", fields), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetProfileWithStats(ctx context.Context, id string) (*store.ProfileWithStats, error) {
	var stats store.ProfileWithStats
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(id)+"/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- hotels ---

func (c *Client) GetHotels(ctx context.Context, filters store.HotelFilters) ([]store.HotelWithDetails, error) {
	query := url.Values{}
	if filters.Query != "" {
		query.Set("q", filters.Query)
	}
	if b := filters.Bounds; b != nil {
		query.Set("north", strconv.FormatFloat(b.North, 'f', -1, 64))
		query.Set("south", strconv.FormatFloat(b.South, 'f', -1, 64))
		query.Set("east", strconv.FormatFloat(b.East, 'f', -1, 64))
		query.Set("west", strconv.FormatFloat(b.West, 'f', -1, 64))
	}
	for _, tier := range filters.PriceTiers {
		query.Add("price_tier", tier)
	}

	hotels := []store.HotelWithDetails{}
	if err := c.do(ctx, http.MethodGet, "/hotels", query, nil, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *Client) GetHotel(ctx context.Context, id string) (*store.HotelWithDetails, error) {
	var hotel store.HotelWithDetails
	if err := c.do(ctx, http.MethodGet, "/hotels/"+url.PathEscape(id), nil, nil, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (c *Client) GetAllTags(ctx context.Context) ([]db.HotelTag, error) {
	tags := []db.HotelTag{}
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// --- reviews ---

func (c *Client) CreateReview(ctx context.Context, input store.NewReview) (*db.Review, error) {
	var review db.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) AddReviewPhotos(ctx context.Context, reviewID string, urls []string) ([]db.ReviewPhoto, error) {
	body := map[string]any{"urls": urls}
	photos := []db.ReviewPhoto{}
	if err := c.do(ctx, http.MethodPost, "/reviews/"+url.PathEscape(reviewID)+"/photos", nil, body, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (c *Client) GetHotelReviews(ctx context.Context, hotelID string) ([]store.ReviewWithDetails, error) {
	reviews := []store.ReviewWithDetails{}
	if err := c.do(ctx, http.MethodGet, "/hotels/"+url.PathEscape(hotelID)+"/reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) GetUserReviews(ctx context.Context, userID string) ([]store.ReviewWithDetails, error) {
	reviews := []store.ReviewWithDetails{}
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID)+"/reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// --- lists ---

func (c *Client) GetUserLists(ctx context.Context, userID string) ([]store.ListWithCount, error) {
	lists := []store.ListWithCount{}
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID)+"/lists", nil, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) GetOrCreateDefaultList(ctx context.Context, userID string) (*db.List, error) {
	var list db.List
	if err := c.do(ctx, http.MethodPost, "/profiles/"+url.PathEscape(userID)+"/lists/default", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CreateList(ctx context.Context, userID, name string) (*db.List, error) {
	var list db.List
	body := map[string]any{"name": name}
	if err := c.do(ctx, http.MethodPost, "/profiles/"+url.PathEscape(userID)+"/lists", nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) SaveHotelToList(ctx context.Context, listID, hotelID string) error {
	path := "/lists/" + url.PathEscape(listID) + "/hotels/" + url.PathEscape(hotelID)
	return c.do(ctx, http.MethodPut, path, nil, nil, nil)
}

func (c *Client) RemoveHotelFromList(ctx context.Context, listID, hotelID string) error {
	path := "/lists/" + url.PathEscape(listID) + "/hotels/" + url.PathEscape(hotelID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) IsHotelSaved(ctx context.Context, userID, hotelID string) (bool, error) {
	var out struct {
		Saved bool `json:"saved"`
	}
	path := "/profiles/" + url.PathEscape(userID) + "/saved/" + url.PathEscape(hotelID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return false, err
	}
	return out.Saved, nil
}

func (c *Client) GetListWithHotels(ctx context.Context, listID string) (*store.ListWithHotels, error) {
	var list store.ListWithHotels
	if err := c.do(ctx, http.MethodGet, "/lists/"+url.PathEscape(listID), nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// --- follows ---

func followPath(followerID, followingID string) string {
	return "/follows/" + url.PathEscape(followerID) + "/" + url.PathEscape(followingID)
}

func (c *Client) FollowUser(ctx context.Context, followerID, followingID string) error {
	return c.do(ctx, http.MethodPut, followPath(followerID, followingID), nil, nil, nil)
}

func (c *Client) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	return c.do(ctx, http.MethodDelete, followPath(followerID, followingID), nil, nil, nil)
}

func (c *Client) GetFollowers(ctx context.Context, userID string) ([]db.Profile, error) {
	profiles := []db.Profile{}
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID)+"/followers", nil, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) GetFollowing(ctx context.Context, userID string) ([]db.Profile, error) {
	profiles := []db.Profile{}
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID)+"/following", nil, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var out struct {
		Following bool `json:"following"`
	}
	if err := c.do(ctx, http.MethodGet, followPath(followerID, followingID), nil, nil, &out); err != nil {
		return false, err
	}
	return out.Following, nil
}

// --- feed ---

func (c *Client) GetFeed(ctx context.Context, userID string) ([]store.FeedItem, error) {
	items := []store.FeedItem{}
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID)+"/feed", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
