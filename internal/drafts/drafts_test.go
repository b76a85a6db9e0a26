package drafts

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/spacebook/internal/storage"
)

var ctx = context.Background()

type memStore struct {
	m map[string]string
}

func newMemStore() *memStore {
	return &memStore{m: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := s.m[key]
	if !ok {
		return "", storage.ErrNotExist
	}
	return value, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.m[key] = value
	return nil
}

func (s *memStore) SetMany(ctx context.Context, pairs map[string]string) error {
	for key, value := range pairs {
		s.m[key] = value
	}
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	delete(s.m, key)
	return nil
}

func (s *memStore) DeleteMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.m, key)
	}
	return nil
}

func TestInsertionOrderPreserved(t *testing.T) {
	store := New(newMemStore())

	for _, text := range []string{"a", "b"} {
		if err := store.Add(ctx, text); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, all); diff != "" {
		t.Errorf("draft list mismatch (-want +got):\n%s", diff)
	}

	if err = store.Remove(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	all, _ = store.List(ctx)
	if diff := cmp.Diff([]string{"b"}, all); diff != "" {
		t.Errorf("draft list mismatch (-want +got):\n%s", diff)
	}
}

// Duplicate texts cannot be individually targeted; removal deletes the first
// textual match only.
func TestRemoveFirstMatchOnly(t *testing.T) {
	store := New(newMemStore())
	store.Add(ctx, "x")
	store.Add(ctx, "x")

	if err := store.Remove(ctx, "x"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"x"}, all); diff != "" {
		t.Errorf("expected exactly one \"x\" to remain (-want +got):\n%s", diff)
	}
}

func TestEmptyTextIgnored(t *testing.T) {
	store := New(newMemStore())

	if err := store.Add(ctx, ""); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no drafts, got %v", all)
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	store := New(newMemStore())
	store.Add(ctx, "keep")

	if err := store.Remove(ctx, "absent"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	all, _ := store.List(ctx)
	if diff := cmp.Diff([]string{"keep"}, all); diff != "" {
		t.Errorf("draft list mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyStoreListsNothing(t *testing.T) {
	all, err := New(newMemStore()).List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty list, got %v", all)
	}
}
