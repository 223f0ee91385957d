package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Storage sqlite-реализация repository.Storage поверх общей kv таблицы.
type Storage struct {
	querier Querier
}

func New(querier Querier) *Storage {
	return &Storage{
		querier: querier,
	}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := qb.
		Select("value").
		From("kv_store").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected kv storage get error: %w", err)
	}

	var value []byte
	err = s.querier.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, fmt.Errorf("unexpected kv storage get error: %w", err)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, strftime('%s','now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`

	_, err := s.querier.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("unexpected kv storage set error: %w", err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	query, args, err := qb.
		Delete("kv_store").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected kv storage remove error: %w", err)
	}

	_, err = s.querier.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected kv storage remove error: %w", err)
	}
	return nil
}

func (s *Storage) RemovePrefix(ctx context.Context, prefix string) error {
	query, args, err := qb.
		Delete("kv_store").
		Where(sq.Like{"key": prefix + "%"}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected kv storage remove prefix error: %w", err)
	}

	_, err = s.querier.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected kv storage remove prefix error: %w", err)
	}
	return nil
}
