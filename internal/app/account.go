package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/client"
	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/validate"
)

// Login validates the credentials locally, exchanges them for a session,
// persists it and routes to the home screen. Validation failures and rejected
// credentials are surfaced as field- or form-scoped notices; no request is
// made when validation fails.
func (a *App) Login(ctx context.Context, email, password string) error {
	sess, err := a.api.Login(ctx, email, password)
	if err != nil {
		var fieldErr *validate.FieldError
		switch {
		case errors.As(err, &fieldErr):
			a.notifier.Notify("Your " + fieldErr.Field + " is not valid!")
		case errors.Is(err, client.ErrMalformedRequest):
			a.notifier.Notify("Invalid email or password. Please try again.")
		default:
			return a.guard(ctx, err)
		}
		return err
	}

	if err = a.sessions.Set(ctx, sess); err != nil {
		return a.guard(ctx, err)
	}
	a.nav.Navigate(RouteHome, nil)
	return nil
}

// Register creates the account, then logs the new user straight in with the
// same credentials.
func (a *App) Register(ctx context.Context, firstName, lastName, email, password string) error {
	_, err := a.api.Register(ctx, firstName, lastName, email, password)
	if err != nil {
		var fieldErr *validate.FieldError
		switch {
		case errors.As(err, &fieldErr):
			a.notifier.Notify("Your " + fieldErr.Field + " is not valid!")
		case errors.Is(err, client.ErrMalformedRequest):
			a.notifier.Notify("An account with this email may already exist.")
		default:
			return a.guard(ctx, err)
		}
		return err
	}
	return a.Login(ctx, email, password)
}

// Logout invalidates the session server-side and clears it locally
// regardless of whether the server answered 200 or 401; either way the user
// ends up at the login screen without a stored token.
func (a *App) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	if err != nil && !errors.Is(err, client.ErrUnauthenticated) {
		a.notifier.Notify("Something went wrong. Please try again!")
		log.Error().Err(err).Msg("logout request failed")
	}

	if cerr := a.sessions.Clear(ctx); cerr != nil {
		a.notifier.Notify("Something went wrong with local storage. Please try again!")
		if err == nil {
			err = cerr
		}
	}
	a.nav.Navigate(RouteLogin, nil)
	return err
}

// Account loads the logged-in user's own profile record.
func (a *App) Account(ctx context.Context) (domain.User, error) {
	sess, err := a.currentSession(ctx)
	if err != nil {
		return domain.User{}, err
	}

	u, err := a.api.GetUser(ctx, sess.UserID)
	if err != nil {
		return domain.User{}, a.guard(ctx, err)
	}
	return u, nil
}

// UpdateAccount patches the profile. The service invalidates the session on
// a successful update, so the flow finishes with a logout and the user logs
// back in with their fresh details.
func (a *App) UpdateAccount(ctx context.Context, upd client.UserUpdate) error {
	sess, err := a.currentSession(ctx)
	if err != nil {
		return err
	}

	if err = a.api.UpdateUser(ctx, sess.UserID, upd); err != nil {
		var fieldErr *validate.FieldError
		switch {
		case errors.As(err, &fieldErr):
			a.notifier.Notify("Your " + fieldErr.Field + " is not valid!")
			return err
		case errors.Is(err, client.ErrMalformedRequest):
			a.notifier.Notify("The server rejected the update. Please check your details.")
			return err
		}
		return a.guard(ctx, err)
	}

	return a.Logout(ctx)
}

// UploadPhoto replaces the logged-in user's profile photo and refreshes the
// local cache copy.
func (a *App) UploadPhoto(ctx context.Context, photo []byte, contentType string) error {
	sess, err := a.currentSession(ctx)
	if err != nil {
		return err
	}

	if err = a.api.UploadPhoto(ctx, sess.UserID, photo, contentType); err != nil {
		return a.guard(ctx, err)
	}

	if err = a.photos.Save(sess.UserID, photo); err != nil {
		log.Error().Err(err).Msg("failed to cache uploaded photo")
	}
	return nil
}
