package repository

import "context"

// Collection names shared by the redis and postgres backends.
const (
	CollectionUsers   = "users"
	CollectionTickets = "tickets"
)

// Store is the minimal keyed record store the service depends on. The memory
// implementation is the in-process placeholder; the redis and postgres
// implementations substitute a real backend without touching auth or policy
// logic. Put is atomic per key; ListAll returns a snapshot taken at call
// time and does not serialize with concurrent writers.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, id string, record T) error
	ListAll(ctx context.Context) ([]T, error)
}
