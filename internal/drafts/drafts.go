// Package drafts persists locally composed, not yet submitted post texts.
// Drafts are an ordered sequence; a draft's position is its working identity,
// since drafts have no server-assigned ids.
package drafts

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/storage"
)

const Key = "draft_posts"

type Store struct {
	kv storage.Store
}

func New(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// List returns all drafts in insertion order. An empty store is an empty
// list, not an error.
func (s *Store) List(ctx context.Context) ([]string, error) {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var all []string
	if err = json.Unmarshal([]byte(raw), &all); err != nil {
		log.Error().Err(err).Msg("stored draft list is not valid JSON")
		return nil, storage.ErrUnavailable
	}
	return all, nil
}

// Add appends the text to the draft list and persists the full updated
// sequence. Empty text is ignored.
func (s *Store) Add(ctx context.Context, text string) error {
	if len(text) == 0 {
		return nil
	}

	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(all, text))
}

// Remove deletes the first draft matching text by value. Duplicate draft
// texts cannot be individually targeted: deleting one deletes the earliest
// textual match. Removing a text that is not stored is a no-op.
func (s *Store) Remove(ctx context.Context, text string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}

	for i, draft := range all {
		if draft == text {
			return s.save(ctx, append(all[:i], all[i+1:]...))
		}
	}
	return nil
}

func (s *Store) save(ctx context.Context, all []string) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return storage.ErrUnavailable
	}
	return s.kv.Set(ctx, Key, string(raw))
}
