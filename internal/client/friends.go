package client

import (
	"context"
	"net/http"

	"github.com/sidereusnuntius/spacebook/internal/domain"
)

func (c *Client) Friends(ctx context.Context, userID string) ([]domain.User, error) {
	var friends []domain.User
	err := c.do(ctx, http.MethodGet, nil, nil, &friends, http.StatusOK, "user", userID, "friends")
	return friends, err
}

// SendFriendRequest asks userID to become a friend. The relation only gates
// visibility once the other side accepts.
func (c *Client) SendFriendRequest(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, nil, nil, nil, http.StatusOK, "user", userID, "friends")
}

// FriendRequests lists the caller's incoming, not yet accepted requests.
func (c *Client) FriendRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	var reqs []domain.FriendRequest
	err := c.do(ctx, http.MethodGet, nil, nil, &reqs, http.StatusOK, "friendrequests")
	return reqs, err
}

func (c *Client) AcceptFriendRequest(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, nil, nil, nil, http.StatusOK, "friendrequests", userID)
}

func (c *Client) RejectFriendRequest(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, nil, http.StatusOK, "friendrequests", userID)
}
