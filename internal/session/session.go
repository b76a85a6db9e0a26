// Package session persists the authenticated user's identity across
// application restarts.
package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/storage"
)

const (
	KeyUserID = "user_id"
	KeyToken  = "session_token"
)

// ErrTorn means exactly one of the two session fields was found in storage.
// Correctly functioning code writes and removes them together, so this is a
// detectable bug rather than a state to silently work around.
var ErrTorn = errors.New("torn session: user id and token out of step")

type Store struct {
	kv storage.Store
}

func New(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Set persists both session fields in one atomic write. A reader never
// observes the token updated without the user id or vice versa.
func (s *Store) Set(ctx context.Context, sess domain.Session) error {
	return s.kv.SetMany(ctx, map[string]string{
		KeyUserID: sess.UserID,
		KeyToken:  sess.Token,
	})
}

// Get returns the persisted session. ok is false when no session is stored,
// which callers treat as "not authenticated". Storage failures also report
// ok false, with the error carrying storage.ErrUnavailable.
func (s *Store) Get(ctx context.Context) (sess domain.Session, ok bool, err error) {
	userID, uerr := s.kv.Get(ctx, KeyUserID)
	token, terr := s.kv.Get(ctx, KeyToken)

	if errors.Is(uerr, storage.ErrUnavailable) || errors.Is(terr, storage.ErrUnavailable) {
		return domain.Session{}, false, storage.ErrUnavailable
	}

	uMissing := errors.Is(uerr, storage.ErrNotExist)
	tMissing := errors.Is(terr, storage.ErrNotExist)
	switch {
	case uMissing && tMissing:
		return domain.Session{}, false, nil
	case uMissing != tMissing:
		log.Error().Bool("user id present", !uMissing).Msg("torn session found in storage")
		return domain.Session{}, false, ErrTorn
	}

	return domain.Session{UserID: userID, Token: token}, true, nil
}

// Clear removes both fields together. Clearing an absent session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.DeleteMany(ctx, KeyUserID, KeyToken)
}
