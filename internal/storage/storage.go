package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotExist is returned when the requested key has no stored value.
	ErrNotExist = errors.New("key does not exist")
	// ErrUnavailable covers I/O failures of the underlying store. Callers must
	// treat a session read that fails this way as "not authenticated" while
	// still reporting the failure to the user.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the local persistent key-value capability the client core depends
// on. It holds the session fields and the draft-post list; it is not a
// general purpose database.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all pairs in one atomic step: a reader never observes
	// some of the keys updated without the others.
	SetMany(ctx context.Context, pairs map[string]string) error
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all given keys atomically. Missing keys are not an
	// error.
	DeleteMany(ctx context.Context, keys ...string) error
}
