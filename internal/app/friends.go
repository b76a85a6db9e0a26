package app

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/spacebook/internal/client"
	"github.com/sidereusnuntius/spacebook/internal/domain"
)

const searchLimit = 20

// FindFriends searches all users whose names match q, for sending friend
// requests. An empty q lists everyone up to the search limit.
func (a *App) FindFriends(ctx context.Context, q string) ([]domain.SearchResult, error) {
	results, err := a.api.Search(ctx, q, searchLimit, "")
	if err != nil {
		return nil, a.guard(ctx, err)
	}
	return results, nil
}

// SearchFriends searches only within the logged-in user's friend list.
func (a *App) SearchFriends(ctx context.Context, q string) ([]domain.SearchResult, error) {
	results, err := a.api.Search(ctx, q, searchLimit, client.SearchInFriends)
	if err != nil {
		return nil, a.guard(ctx, err)
	}
	return results, nil
}

// Friends lists the logged-in user's friends.
func (a *App) Friends(ctx context.Context) ([]domain.User, error) {
	sess, err := a.currentSession(ctx)
	if err != nil {
		return nil, err
	}
	return a.FriendsOf(ctx, sess.UserID)
}

// FriendsOf lists the friends of another user; only friends' lists are
// visible, anyone else's is answered with 403.
func (a *App) FriendsOf(ctx context.Context, userID string) ([]domain.User, error) {
	friends, err := a.api.Friends(ctx, userID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("Can only view the friends of yourself or friends!")
			return nil, err
		}
		return nil, a.guard(ctx, err)
	}
	return friends, nil
}

func (a *App) SendFriendRequest(ctx context.Context, userID string) error {
	err := a.api.SendFriendRequest(ctx, userID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("You are already friends with this user, or a request is pending!")
			return err
		}
		return a.guard(ctx, err)
	}
	a.notifier.Notify("Friend request sent!")
	return nil
}

// FriendRequests lists incoming friend requests awaiting a decision.
func (a *App) FriendRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	reqs, err := a.api.FriendRequests(ctx)
	if err != nil {
		return nil, a.guard(ctx, err)
	}
	return reqs, nil
}

func (a *App) AcceptFriendRequest(ctx context.Context, userID string) error {
	if err := a.api.AcceptFriendRequest(ctx, userID); err != nil {
		return a.guard(ctx, err)
	}
	return nil
}

func (a *App) RejectFriendRequest(ctx context.Context, userID string) error {
	if err := a.api.RejectFriendRequest(ctx, userID); err != nil {
		return a.guard(ctx, err)
	}
	return nil
}
