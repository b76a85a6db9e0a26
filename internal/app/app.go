// Package app implements the screen-level operations of the Spacebook
// client: what each screen does minus its rendering. Navigation and user
// notices are injected capabilities, so the surrounding UI layer owns routing
// and toasts while the operations stay testable.
package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/client"
	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/drafts"
	"github.com/sidereusnuntius/spacebook/internal/session"
	"github.com/sidereusnuntius/spacebook/internal/storage"
	"github.com/sidereusnuntius/spacebook/internal/storage/photocache"
	"github.com/sidereusnuntius/spacebook/internal/validate"
)

// Navigation intents the core signals to the UI layer.
const (
	RouteLogin   = "login"
	RouteHome    = "home"
	RouteProfile = "profile"
)

// Notifier shows a transient notice to the user. Injected rather than a
// process-wide singleton so tests can substitute a recording stub.
type Notifier interface {
	Notify(message string)
}

// Navigator receives navigation intents. The actual routing stack lives in
// the UI layer.
type Navigator interface {
	Navigate(route string, params map[string]string)
}

type App struct {
	api      *client.Client
	sessions *session.Store
	drafts   *drafts.Store
	photos   *photocache.PhotoCache
	notifier Notifier
	nav      Navigator
}

func New(api *client.Client, sessions *session.Store, draftStore *drafts.Store, photos *photocache.PhotoCache, notifier Notifier, nav Navigator) *App {
	return &App{
		api:      api,
		sessions: sessions,
		drafts:   draftStore,
		photos:   photos,
		notifier: notifier,
		nav:      nav,
	}
}

// guard applies the uniform reaction every screen shares: authentication
// expiry clears the session and routes to login, storage loss is treated as
// "not authenticated" while still being reported, and the remaining failures
// get a generic notice. Validation and forbidden errors are left to the call
// sites, which know the field or rule involved. The error is always passed
// through; failures are reported once, never retried.
func (a *App) guard(ctx context.Context, err error) error {
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUnauthenticated):
		if cerr := a.sessions.Clear(ctx); cerr != nil {
			log.Error().Err(cerr).Msg("failed to clear session after 401")
		}
		a.nav.Navigate(RouteLogin, nil)
	case errors.Is(err, storage.ErrUnavailable):
		a.notifier.Notify("Something went wrong with local storage. Please try again!")
		a.nav.Navigate(RouteLogin, nil)
	case errors.Is(err, validate.ErrValidation), errors.Is(err, client.ErrForbidden):
	default:
		a.notifier.Notify("Something went wrong. Please try again!")
		log.Error().Err(err).Msg("operation failed")
	}
	return err
}

// currentSession reads the persisted session for an operation that cannot
// proceed without one, routing to login when it is absent or unreadable.
func (a *App) currentSession(ctx context.Context) (domain.Session, error) {
	sess, ok, err := a.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			// guard owns the storage-failure notice and the route to login;
			// the failure is reported even though we navigate as if logged out.
			return domain.Session{}, a.guard(ctx, err)
		}
		a.nav.Navigate(RouteLogin, nil)
		return domain.Session{}, err
	}
	if !ok {
		a.nav.Navigate(RouteLogin, nil)
		return domain.Session{}, client.ErrUnauthenticated
	}
	return sess, nil
}

// CheckSession is the explicit on-enter hook the UI layer calls when a
// protected screen gains focus. It reports whether a session is present,
// routing to login when it is not.
func (a *App) CheckSession(ctx context.Context) bool {
	_, ok, err := a.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrTorn) {
			// A torn session is a bug; drop it rather than limp on.
			if cerr := a.sessions.Clear(ctx); cerr != nil {
				log.Error().Err(cerr).Msg("failed to clear torn session")
			}
		} else {
			a.notifier.Notify("Something went wrong with local storage. Please try again!")
		}
		a.nav.Navigate(RouteLogin, nil)
		return false
	}
	if !ok {
		a.nav.Navigate(RouteLogin, nil)
	}
	return ok
}
