package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// CreateTicketRequest payload for POST /tickets. The owner always comes from
// the authenticated identity, never from the body.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// TicketResponse is the wire representation of a ticket.
type TicketResponse struct {
	TicketID       string              `json:"ticketId"`
	Subject        string              `json:"subject"`
	Description    string              `json:"description"`
	Status         domain.TicketStatus `json:"status"`
	OwnerUserID    string              `json:"ownerUserId"`
	AssigneeUserID *string             `json:"assigneeUserId"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// NewTicketResponse maps a domain ticket onto the wire shape.
func NewTicketResponse(ticket domain.Ticket) TicketResponse {
	return TicketResponse{
		TicketID:       ticket.ID,
		Subject:        ticket.Subject,
		Description:    ticket.Description,
		Status:         ticket.Status,
		OwnerUserID:    ticket.OwnerID,
		AssigneeUserID: ticket.AssigneeID,
		CreatedAt:      ticket.CreatedAt,
		UpdatedAt:      ticket.UpdatedAt,
	}
}
