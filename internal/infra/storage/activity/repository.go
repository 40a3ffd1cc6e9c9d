package activity

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const table = "activity_log"

// Repository журнал действий (только запись и чтение последних записей)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал и заполняет её ID
func (r *Repository) Append(ctx context.Context, entry *domain.ActivityLogEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("timestamp", "actor", "action", "details").
		Values(entry.Timestamp, entry.Actor, entry.Action, entry.Details).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListRecent возвращает последние limit записей, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "timestamp", "actor", "action", "details").
		From(table).
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.ActivityLogEntry, 0, limit)
	for rows.Next() {
		var entry domain.ActivityLogEntry
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Actor, &entry.Action, &entry.Details); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %w", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}
