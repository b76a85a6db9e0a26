package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/client"
	"github.com/sidereusnuntius/spacebook/internal/domain"
)

// Profile is what the profile screen renders: whose wall it is, their posts
// and their photo.
type Profile struct {
	// OwnerID is the id of the user whose profile is shown.
	OwnerID string
	// Title is "My Profile" for the logged-in user's own wall, otherwise the
	// friend's name.
	Title string
	// Own reports whether the profile belongs to the logged-in user.
	Own   bool
	Posts []domain.Post
	Photo []byte
}

// ViewProfile loads a profile wall. friendID and friendName are empty when
// the user is viewing their own wall. The photo is fetched only after the
// post list resolves; a missing photo does not fail the whole view.
func (a *App) ViewProfile(ctx context.Context, friendID, friendName string) (Profile, error) {
	sess, err := a.currentSession(ctx)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		OwnerID: sess.UserID,
		Title:   "My Profile",
		Own:     true,
	}
	if friendID != "" && friendID != sess.UserID {
		p.OwnerID = friendID
		p.Title = friendName + "'s profile"
		p.Own = false
	}

	p.Posts, err = a.api.Posts(ctx, p.OwnerID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("Can only view posts of yourself or friends!")
			return Profile{}, err
		}
		return Profile{}, a.guard(ctx, err)
	}

	p.Photo, err = a.api.GetPhoto(ctx, p.OwnerID)
	if err != nil {
		log.Error().Err(err).Str("user", p.OwnerID).Msg("failed to fetch profile photo")
		if cached, cerr := a.photos.Load(p.OwnerID); cerr == nil {
			p.Photo = cached
		}
		return p, nil
	}
	if err = a.photos.Save(p.OwnerID, p.Photo); err != nil {
		log.Error().Err(err).Msg("failed to cache profile photo")
	}

	return p, nil
}

// ViewPost loads a single post from a profile wall.
func (a *App) ViewPost(ctx context.Context, ownerID string, postID int64) (domain.Post, error) {
	post, err := a.api.GetPost(ctx, ownerID, postID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("Can only view posts of yourself or friends!")
			return domain.Post{}, err
		}
		return domain.Post{}, a.guard(ctx, err)
	}
	return post, nil
}

// CreatePost posts text on the wall of ownerID.
func (a *App) CreatePost(ctx context.Context, ownerID, text string) error {
	if err := a.api.CreatePost(ctx, ownerID, text); err != nil {
		return a.guard(ctx, err)
	}
	return nil
}

// UpdatePost replaces the text of one of the logged-in user's own posts.
func (a *App) UpdatePost(ctx context.Context, ownerID string, postID int64, text string) error {
	err := a.api.UpdatePost(ctx, ownerID, postID, text)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("You can only update your own posts!")
			return err
		}
		return a.guard(ctx, err)
	}
	return nil
}

func (a *App) DeletePost(ctx context.Context, ownerID string, postID int64) error {
	err := a.api.DeletePost(ctx, ownerID, postID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("You can only delete your own posts!")
			return err
		}
		return a.guard(ctx, err)
	}
	return nil
}

// LikePost likes a post on someone's wall. Liking twice is a business rule
// violation the service answers with 403; it is reported, never retried.
func (a *App) LikePost(ctx context.Context, ownerID string, postID int64) error {
	err := a.api.LikePost(ctx, ownerID, postID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("You have already liked this post!")
			return err
		}
		return a.guard(ctx, err)
	}
	return nil
}

func (a *App) UnlikePost(ctx context.Context, ownerID string, postID int64) error {
	err := a.api.UnlikePost(ctx, ownerID, postID)
	if err != nil {
		if errors.Is(err, client.ErrForbidden) {
			a.notifier.Notify("You have not liked this post!")
			return err
		}
		return a.guard(ctx, err)
	}
	return nil
}
