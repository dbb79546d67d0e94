package domain

import "fmt"

// Role enumerates the account roles known to the service.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
)

// ParseRole maps a raw string onto a known Role. Unknown values are a
// decode failure, never passed through.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleUser:
		return RoleUser, nil
	case RoleAgent:
		return RoleAgent, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// User is a stored account record. Accounts are seeded at startup and
// read-only afterwards; there are no user management operations.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
}

// Identity is the verified (user id, role) pair established for the
// duration of a single request. It is derived only from a verified token.
type Identity struct {
	UserID string
	Role   Role
}
