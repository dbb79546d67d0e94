package auth

import "github.com/spec-kit/helpdesk/internal/domain"

// Access policy: pure functions of (identity, operation, target ticket).
// Rules are role- plus ownership-based, first match wins; any combination
// not covered below is denied.

// CanListAll reports whether a role may list tickets beyond its own scope.
// No role in the current rule set has that right.
func CanListAll(role domain.Role) bool {
	switch role {
	case domain.RoleUser, domain.RoleAgent:
		return false
	}
	return false
}

// CanCreateTicket reports whether the identity may create tickets, becoming
// their owner. Only end-users open tickets; agents work them.
func CanCreateTicket(identity domain.Identity) bool {
	return identity.Role == domain.RoleUser
}

// CanViewTicket reports whether the identity may see the given ticket.
// Users see tickets they own, agents see tickets assigned to them.
func CanViewTicket(identity domain.Identity, ticket domain.Ticket) bool {
	switch identity.Role {
	case domain.RoleUser:
		return ticket.OwnerID == identity.UserID
	case domain.RoleAgent:
		return ticket.AssigneeID != nil && *ticket.AssigneeID == identity.UserID
	}
	return false
}
