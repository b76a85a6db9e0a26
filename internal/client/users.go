package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/validate"
)

// SearchInFriends scopes a search to the caller's friend list.
const SearchInFriends = "friends"

func (c *Client) GetUser(ctx context.Context, userID string) (domain.User, error) {
	var u domain.User
	err := c.do(ctx, http.MethodGet, nil, nil, &u, http.StatusOK, "user", userID)
	return u, err
}

// UserUpdate carries the profile fields to change. Zero-valued fields are
// left out of the request body.
type UserUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
}

// UpdateUser patches the profile. Email and password, when present, pass the
// same local validation the login form uses before any request is made. A
// successful update invalidates the session server-side, so the caller
// triggers a fresh login afterwards.
func (c *Client) UpdateUser(ctx context.Context, userID string, upd UserUpdate) error {
	if upd.Email != "" {
		if err := validate.Email(upd.Email); err != nil {
			return err
		}
	}
	if upd.Password != "" {
		if err := validate.Password(upd.Password); err != nil {
			return err
		}
	}

	return c.do(ctx, http.MethodPatch, nil, upd, nil, http.StatusOK, "user", userID)
}

// GetPhoto fetches the user's profile photo as raw bytes.
func (c *Client) GetPhoto(ctx context.Context, userID string) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "", nil, http.StatusOK, "user", userID, "photo")
}

// UploadPhoto replaces the caller's profile photo. contentType names the
// image encoding, e.g. image/png or image/jpeg.
func (c *Client) UploadPhoto(ctx context.Context, userID string, photo []byte, contentType string) error {
	_, err := c.doRaw(ctx, http.MethodPost, contentType, photo, http.StatusOK, "user", userID, "photo")
	return err
}

// Search finds users whose names match q. searchIn may be SearchInFriends to
// scope the search to the caller's friend list, or empty for everyone.
func (c *Client) Search(ctx context.Context, q string, limit int, searchIn string) ([]domain.SearchResult, error) {
	query := url.Values{}
	query.Set("q", q)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if searchIn != "" {
		query.Set("search_in", searchIn)
	}

	var results []domain.SearchResult
	err := c.do(ctx, http.MethodGet, query, nil, &results, http.StatusOK, "search")
	return results, err
}
