package blobstore

import (
	"context"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStoreAndFetch(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.Store([]byte("PLAYER,KICK_EF\nH1,3\n"), "")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(ref, ".csv") {
		t.Errorf("expected .csv ref, got %q", ref)
	}

	data, err := s.Fetch(context.Background(), ref)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "PLAYER,KICK_EF\nH1,3\n" {
		t.Errorf("fetched wrong content: %q", data)
	}
}

func TestStoreReplacesOldRef(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	old, err := s.Store([]byte("v1"), "")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	ref, err := s.Store([]byte("v2"), old)
	if err != nil {
		t.Fatalf("Store(replace): %v", err)
	}
	if ref == old {
		t.Error("replacement must mint a fresh ref")
	}

	if _, err := s.Fetch(ctx, old); err == nil {
		t.Error("old blob should be gone after replacement")
	}
	data, err := s.Fetch(ctx, ref)
	if err != nil || string(data) != "v2" {
		t.Errorf("fetch new blob: %q, %v", data, err)
	}
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	s := newTestStore(t)
	if err := s.Delete("never-stored.csv"); err != nil {
		t.Errorf("Delete(missing): %v", err)
	}
}

func TestFetchHonorsContext(t *testing.T) {
	s := newTestStore(t)
	ref, _ := s.Store([]byte("x"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Fetch(ctx, ref); err == nil {
		t.Error("expected error for cancelled context")
	}
}
