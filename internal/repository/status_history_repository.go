package repository

import (
	"context"

	"go-gin-stream-events/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatusHistoryRepository interface {
	Append(ctx context.Context, change model.StatusChange) error
	ListByEvent(ctx context.Context, eventID int) ([]*model.StatusHistoryEntry, error)
}

type StatusHistoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewStatusHistoryRepository(pool *pgxpool.Pool) StatusHistoryRepository {
	return &StatusHistoryRepositoryImpl{
		pool: pool,
	}
}

func (r *StatusHistoryRepositoryImpl) Append(ctx context.Context, change model.StatusChange) error {
	query := `
		INSERT INTO event_status_history (event_id, from_status, to_status, reason, changed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, change.EventID, change.From, change.To, change.Reason, change.At.UTC())
	return err
}

func (r *StatusHistoryRepositoryImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.StatusHistoryEntry, error) {
	query := `
		SELECT id, event_id, from_status, to_status, reason, changed_at
		FROM event_status_history
		WHERE event_id = $1
		ORDER BY changed_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.StatusHistoryEntry])
	if err != nil {
		return nil, err
	}
	return entries, nil
}
