package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each collection in a two-column table
// (id TEXT PRIMARY KEY, doc JSONB) and upserts on Put. The table name comes
// from the fixed collection constants, never from caller input.
type PostgresStore[T any] struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresStore builds a store over the given table.
func NewPostgresStore[T any](pool *pgxpool.Pool, collection string) *PostgresStore[T] {
	return &PostgresStore[T]{pool: pool, table: collection}
}

func (s *PostgresStore[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	var doc []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id=$1`, s.table)
	if err := s.pool.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record, ErrNotFound
		}
		return record, fmt.Errorf("postgres get %s/%s: %w", s.table, id, err)
	}
	if err := json.Unmarshal(doc, &record); err != nil {
		return record, fmt.Errorf("decode %s/%s: %w", s.table, id, err)
	}
	return record, nil
}

func (s *PostgresStore[T]) Put(ctx context.Context, id string, record T) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", s.table, id, err)
	}
	query := fmt.Sprintf(`
        INSERT INTO %s (id, doc) VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET doc=EXCLUDED.doc`, s.table)
	if _, err := s.pool.Exec(ctx, query, id, doc); err != nil {
		return fmt.Errorf("postgres put %s/%s: %w", s.table, id, err)
	}
	return nil
}

func (s *PostgresStore[T]) ListAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s`, s.table)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres list %s: %w", s.table, err)
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var record T
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.table, err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
