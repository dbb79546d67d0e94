package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen TicketStatus = "OPEN"
)

// Ticket is the aggregate for support requests. OwnerID is immutable after
// creation; AssigneeID is set at most once, at creation time.
type Ticket struct {
	ID          string
	Subject     string
	Description string
	Status      TicketStatus
	OwnerID     string
	AssigneeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
