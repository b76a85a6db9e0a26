package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/storage"
)

var ctx = context.Background()

// memStore is an in-memory stand-in for the SQLite-backed store.
type memStore struct {
	m       map[string]string
	failing bool
}

func newMemStore() *memStore {
	return &memStore{m: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	if s.failing {
		return "", storage.ErrUnavailable
	}
	value, ok := s.m[key]
	if !ok {
		return "", storage.ErrNotExist
	}
	return value, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *memStore) SetMany(ctx context.Context, pairs map[string]string) error {
	if s.failing {
		return storage.ErrUnavailable
	}
	for key, value := range pairs {
		s.m[key] = value
	}
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	return s.DeleteMany(ctx, key)
}

func (s *memStore) DeleteMany(ctx context.Context, keys ...string) error {
	if s.failing {
		return storage.ErrUnavailable
	}
	for _, key := range keys {
		delete(s.m, key)
	}
	return nil
}

func TestRoundTrip(t *testing.T) {
	store := New(newMemStore())

	want := domain.Session{UserID: "17", Token: "opaque-token"}
	if err := store.Set(ctx, want); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, ok, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ok {
		t.Fatal("expected a session to be present")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := New(newMemStore())
	store.Set(ctx, domain.Session{UserID: "17", Token: "opaque-token"})

	for i := 0; i < 2; i++ {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("clear %d: unexpected error: %s", i+1, err)
		}
		_, ok, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("clear %d: unexpected error: %s", i+1, err)
		}
		if ok {
			t.Errorf("clear %d: expected absent session", i+1)
		}
	}
}

func TestAbsentSession(t *testing.T) {
	store := New(newMemStore())

	_, ok, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ok {
		t.Error("expected no session in an empty store")
	}
}

func TestTornSessionDetected(t *testing.T) {
	kv := newMemStore()
	kv.m[KeyToken] = "opaque-token"

	_, ok, err := New(kv).Get(ctx)
	if ok {
		t.Error("a torn session must not be reported as present")
	}
	if !errors.Is(err, ErrTorn) {
		t.Errorf("expected %v, got %v", ErrTorn, err)
	}
}

func TestUnavailableStorage(t *testing.T) {
	kv := newMemStore()
	kv.failing = true

	_, ok, err := New(kv).Get(ctx)
	if ok {
		t.Error("an unreadable store must be treated as not authenticated")
	}
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Errorf("expected %v, got %v", storage.ErrUnavailable, err)
	}
}
