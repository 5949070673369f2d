package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/talent/pkg/repository"
)

// Collection stores documents of one kind as JSONB rows of the documents
// table. Ordering follows the insert sequence, newest first.
type Collection[T any] struct {
	pool *pgxpool.Pool
	kind string
}

func NewCollection[T any](pool *pgxpool.Pool, kind string) *Collection[T] {
	return &Collection[T]{pool: pool, kind: kind}
}

var _ repository.Collection[struct{}] = (*Collection[struct{}])(nil)

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT body FROM documents
		WHERE kind = $1
		ORDER BY seq DESC
	`, c.kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.kind, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var v T
	var raw []byte
	err := c.pool.QueryRow(ctx, `
		SELECT body FROM documents WHERE kind = $1 AND id = $2
	`, c.kind, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return v, repository.ErrNotFound
		}
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", c.kind, err)
	}
	return v, nil
}

func (c *Collection[T]) Insert(ctx context.Context, id string, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.kind, err)
	}
	_, err = c.pool.Exec(ctx, `
		INSERT INTO documents (kind, id, body)
		VALUES ($1, $2, $3)
	`, c.kind, id, body)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var zero T
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return zero, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var raw []byte
	err = tx.QueryRow(ctx, `
		SELECT body FROM documents WHERE kind = $1 AND id = $2 FOR UPDATE
	`, c.kind, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, repository.ErrNotFound
		}
		return zero, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("decode %s: %w", c.kind, err)
	}
	if err := fn(&v); err != nil {
		return zero, err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", c.kind, err)
	}
	if _, err := tx.Exec(ctx, `
		UPDATE documents SET body = $3, updated_at = now()
		WHERE kind = $1 AND id = $2
	`, c.kind, id, body); err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	return v, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM documents WHERE kind = $1 AND id = $2`, c.kind, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
