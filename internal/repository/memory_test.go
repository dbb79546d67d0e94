package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestMemoryStoreGetPut(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[domain.User]()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	user := domain.User{ID: "user1-id", Username: "user1", Role: domain.RoleUser}
	if err := store.Put(ctx, user.ID, user); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := store.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "user1" {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Put on an existing key overwrites atomically.
	user.Username = "renamed"
	if err := store.Put(ctx, user.ID, user); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = store.Get(ctx, user.ID)
	if got.Username != "renamed" {
		t.Fatalf("expected overwrite, got %+v", got)
	}
}

func TestMemoryStoreListAllSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[domain.Ticket]()
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("t%d", i)
		if err := store.Put(ctx, id, domain.Ticket{ID: id}); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	snapshot, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 records, got %d", len(snapshot))
	}

	// Writes after the snapshot must not surface in it.
	if err := store.Put(ctx, "t9", domain.Ticket{ID: "t9"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("snapshot mutated by later write")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[domain.Ticket]()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				id := fmt.Sprintf("g%d-t%d", g, i)
				if err := store.Put(ctx, id, domain.Ticket{ID: id}); err != nil {
					t.Errorf("put %s: %v", id, err)
				}
				if _, err := store.ListAll(ctx); err != nil {
					t.Errorf("list: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 8*50 {
		t.Fatalf("expected 400 records, got %d", len(all))
	}
}
