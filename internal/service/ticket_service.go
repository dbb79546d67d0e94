package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// PickFunc selects a uniformly random index in [0, n). Injected so tests can
// make assignment deterministic.
type PickFunc func(n int) int

// TicketService coordinates ticket creation and role-scoped listing. Every
// operation consults the access policy before touching storage.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	pick       PickFunc
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Pick       PickFunc
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	pick := deps.Pick
	if pick == nil {
		pick = rand.New(rand.NewSource(time.Now().UnixNano())).Intn
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		pick:       pick,
	}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject     string
	Description string
}

// Create opens a ticket owned by the caller and assigns it to a random agent.
// When no agents exist the ticket stays unassigned rather than failing.
func (s *TicketService) Create(ctx context.Context, identity domain.Identity, input TicketCreateInput) (domain.Ticket, error) {
	if !auth.CanCreateTicket(identity) {
		return domain.Ticket{}, apperrors.NewForbidden("role may not create tickets")
	}

	now := time.Now().UTC()
	ticket := domain.Ticket{
		ID:          uuid.NewString(),
		Subject:     strings.TrimSpace(input.Subject),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.TicketStatusOpen,
		OwnerID:     identity.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	agents, err := s.users.ListByRole(ctx, domain.RoleAgent)
	if err != nil {
		return domain.Ticket{}, apperrors.ToDomainError(err)
	}
	if len(agents) > 0 {
		assignee := agents[s.pick(len(agents))]
		ticket.AssigneeID = &assignee.ID
	} else {
		s.logger.Debug("no agents available; leaving ticket unassigned", zap.String("ticket_id", ticket.ID))
	}

	if err := s.tickets.Save(ctx, &ticket); err != nil {
		return domain.Ticket{}, apperrors.ToDomainError(err)
	}

	s.publishEvent(ctx, identity, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Subject: ticket.Subject,
			OwnerID: ticket.OwnerID,
		},
	})
	if ticket.AssigneeID != nil {
		s.publishEvent(ctx, identity, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			Payload: events.TicketAssignedPayload{
				AssigneeID: *ticket.AssigneeID,
			},
		})
	}
	return ticket, nil
}

// ListVisible returns the snapshot of tickets the identity may see: owned
// tickets for users, assigned tickets for agents, nothing otherwise.
func (s *TicketService) ListVisible(ctx context.Context, identity domain.Identity) ([]domain.Ticket, error) {
	if auth.CanListAll(identity.Role) {
		all, err := s.tickets.ListAll(ctx)
		if err != nil {
			return nil, apperrors.ToDomainError(err)
		}
		return all, nil
	}

	var tickets []domain.Ticket
	var err error
	switch identity.Role {
	case domain.RoleUser:
		tickets, err = s.tickets.ListByOwner(ctx, identity.UserID)
	case domain.RoleAgent:
		tickets, err = s.tickets.ListByAssignee(ctx, identity.UserID)
	default:
		return []domain.Ticket{}, nil
	}
	if err != nil {
		return nil, apperrors.ToDomainError(err)
	}
	return tickets, nil
}

func (s *TicketService) publishEvent(ctx context.Context, identity domain.Identity, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Actor = events.Actor{UserID: identity.UserID, Role: identity.Role}
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}
