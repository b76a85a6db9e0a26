package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sidereusnuntius/spacebook/internal/domain"
)

type postBody struct {
	Text string `json:"text"`
}

func (c *Client) Posts(ctx context.Context, userID string) ([]domain.Post, error) {
	var posts []domain.Post
	err := c.do(ctx, http.MethodGet, nil, nil, &posts, http.StatusOK, "user", userID, "post")
	return posts, err
}

func (c *Client) GetPost(ctx context.Context, userID string, postID int64) (domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, http.MethodGet, nil, nil, &post, http.StatusOK, "user", userID, "post", strconv.FormatInt(postID, 10))
	return post, err
}

func (c *Client) CreatePost(ctx context.Context, userID, text string) error {
	return c.do(ctx, http.MethodPost, nil, postBody{Text: text}, nil, http.StatusCreated, "user", userID, "post")
}

func (c *Client) UpdatePost(ctx context.Context, userID string, postID int64, text string) error {
	return c.do(ctx, http.MethodPatch, nil, postBody{Text: text}, nil, http.StatusOK, "user", userID, "post", strconv.FormatInt(postID, 10))
}

func (c *Client) DeletePost(ctx context.Context, userID string, postID int64) error {
	return c.do(ctx, http.MethodDelete, nil, nil, nil, http.StatusOK, "user", userID, "post", strconv.FormatInt(postID, 10))
}

// LikePost likes a post. Liking a post twice is answered with 403 by the
// service and surfaces as ErrForbidden.
func (c *Client) LikePost(ctx context.Context, userID string, postID int64) error {
	return c.do(ctx, http.MethodPost, nil, nil, nil, http.StatusOK, "user", userID, "post", strconv.FormatInt(postID, 10), "like")
}

// UnlikePost removes a like. Unliking a post that was never liked surfaces
// as ErrForbidden.
func (c *Client) UnlikePost(ctx context.Context, userID string, postID int64) error {
	return c.do(ctx, http.MethodDelete, nil, nil, nil, http.StatusOK, "user", userID, "post", strconv.FormatInt(postID, 10), "like")
}
