package repository

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestTicketRepositorySaveRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(NewMemoryStore[domain.Ticket]())

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ticket := domain.Ticket{
		ID:        "t1",
		OwnerID:   "user1-id",
		Status:    domain.TicketStatusOpen,
		CreatedAt: stale,
		UpdatedAt: stale,
	}
	if err := repo.Save(ctx, &ticket); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !ticket.UpdatedAt.After(stale) {
		t.Fatalf("expected UpdatedAt refreshed on save, got %v", ticket.UpdatedAt)
	}
	if ticket.CreatedAt != stale {
		t.Fatalf("CreatedAt must not change on save")
	}

	stored, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.UpdatedAt != ticket.UpdatedAt {
		t.Fatalf("stored record differs from saved ticket")
	}
}

func TestTicketRepositoryScopedListings(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(NewMemoryStore[domain.Ticket]())

	agent := "agent1-id"
	tickets := []domain.Ticket{
		{ID: "t1", OwnerID: "user1-id", AssigneeID: &agent},
		{ID: "t2", OwnerID: "user1-id"},
		{ID: "t3", OwnerID: "user2-id", AssigneeID: &agent},
	}
	for i := range tickets {
		if err := repo.Save(ctx, &tickets[i]); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	owned, err := repo.ListByOwner(ctx, "user1-id")
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 owned tickets, got %d", len(owned))
	}

	assigned, err := repo.ListByAssignee(ctx, agent)
	if err != nil {
		t.Fatalf("list by assignee: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("expected 2 assigned tickets, got %d", len(assigned))
	}

	none, err := repo.ListByAssignee(ctx, "agent2-id")
	if err != nil {
		t.Fatalf("list by assignee: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no tickets for unassigned agent, got %d", len(none))
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(all))
	}
}
