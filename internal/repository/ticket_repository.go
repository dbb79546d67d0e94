package repository

import (
	"context"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// TicketRepository encapsulates ticket persistence. All mutation goes through
// Save, which refreshes UpdatedAt; tickets are never deleted.
type TicketRepository interface {
	Save(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]domain.Ticket, error)
}

type ticketRepository struct {
	store Store[domain.Ticket]
}

// NewTicketRepository layers ticket lookups over a record store keyed by
// ticket id.
func NewTicketRepository(store Store[domain.Ticket]) TicketRepository {
	return &ticketRepository{store: store}
}

func (r *ticketRepository) Save(ctx context.Context, ticket *domain.Ticket) error {
	ticket.UpdatedAt = time.Now().UTC()
	return r.store.Put(ctx, ticket.ID, *ticket)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (domain.Ticket, error) {
	return r.store.Get(ctx, id)
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return r.store.ListAll(ctx)
}

func (r *ticketRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error) {
	return r.listMatching(ctx, func(t domain.Ticket) bool {
		return t.OwnerID == ownerID
	})
}

func (r *ticketRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]domain.Ticket, error) {
	return r.listMatching(ctx, func(t domain.Ticket) bool {
		return t.AssigneeID != nil && *t.AssigneeID == assigneeID
	})
}

func (r *ticketRepository) listMatching(ctx context.Context, match func(domain.Ticket) bool) ([]domain.Ticket, error) {
	tickets, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if match(ticket) {
			result = append(result, ticket)
		}
	}
	return result, nil
}
