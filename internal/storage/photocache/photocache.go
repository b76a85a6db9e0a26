// Package photocache keeps fetched profile photos on disk so screens can
// display them without refetching the binary on every render.
package photocache

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/storage"
)

var ErrNotDir = errors.New("given root is not a directory")

type PhotoCache struct {
	Root string
}

func New(root string) (*PhotoCache, error) {
	c := &PhotoCache{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			return nil, ErrNotDir
		}
		return c, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up photo cache")
		return nil, storage.ErrUnavailable
	}

	return c, nil
}

func (c *PhotoCache) path(userID string) string {
	return filepath.Join(c.Root, userID+".photo")
}

func (c *PhotoCache) Load(userID string) ([]byte, error) {
	content, err := os.ReadFile(c.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Str("user", userID).Msg("failed to read cached photo")
		return nil, storage.ErrUnavailable
	}
	return content, nil
}

func (c *PhotoCache) Save(userID string, content []byte) error {
	if err := os.WriteFile(c.path(userID), content, 0o644); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to cache photo")
		return storage.ErrUnavailable
	}
	return nil
}

func (c *PhotoCache) Remove(userID string) error {
	if err := os.Remove(c.path(userID)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Str("user", userID).Msg("photo removal error")
		return storage.ErrUnavailable
	}
	return nil
}
