package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-stream-events/internal/model"
	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	ListByCreator(ctx context.Context, creatorID int) ([]*model.Event, error)
	ListByCategory(ctx context.Context, category model.Category) ([]*model.Event, error)
	ExistsByCreatorAndTitle(ctx context.Context, creatorID int, title string) (bool, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	UpdateStatus(ctx context.Context, id int, status model.EventStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
	CountByCreator(ctx context.Context, creatorID int) (int, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `
	e.id, e.event_id, e.title, e.description, e.creator_id, a.username,
	e.category, e.scheduled_date, e.status, e.thumbnail, e.max_viewers,
	e.is_featured, e.tags, e.stream_url, e.created_at, e.updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Title,
		&event.Description,
		&event.CreatorID,
		&event.CreatorUsername,
		&event.Category,
		&event.ScheduledDate,
		&event.Status,
		&event.Thumbnail,
		&event.MaxViewers,
		&event.IsFeatured,
		&event.Tags,
		&event.StreamURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func collectEvents(rows pgx.Rows) ([]*model.Event, error) {
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		WITH e AS (
			INSERT INTO events (
				event_id, title, description, creator_id, category, scheduled_date,
				status, thumbnail, max_viewers, is_featured, tags, stream_url
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING *
		)
		SELECT ` + eventColumns + `
		FROM e
		JOIN accounts a ON a.id = e.creator_id
	`

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Title, event.Description, event.CreatorID, event.Category,
		event.ScheduledDate, event.Status, event.Thumbnail, event.MaxViewers,
		event.IsFeatured, event.Tags, event.StreamURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN accounts a ON a.id = e.creator_id
		WHERE e.event_id = $1
	`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// List 依條件查詢，DateTo 為不含的上界
func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	conds := []string{}
	args := []interface{}{}
	argPos := 1

	if term := strings.TrimSpace(filter.Search); term != "" {
		conds = append(conds, fmt.Sprintf(
			"(e.title ILIKE $%[1]d OR e.description ILIKE $%[1]d OR e.tags ILIKE $%[1]d OR a.username ILIKE $%[1]d)",
			argPos,
		))
		args = append(args, likePattern(term))
		argPos++
	}

	if filter.Category != "" {
		conds = append(conds, fmt.Sprintf("e.category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}

	if filter.Status != "" {
		conds = append(conds, fmt.Sprintf("e.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	if filter.DateFrom != nil {
		conds = append(conds, fmt.Sprintf("e.scheduled_date >= $%d", argPos))
		args = append(args, *filter.DateFrom)
		argPos++
	}

	if filter.DateTo != nil {
		conds = append(conds, fmt.Sprintf("e.scheduled_date < $%d", argPos))
		args = append(args, *filter.DateTo)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		JOIN accounts a ON a.id = e.creator_id
		%s
		ORDER BY e.created_at DESC, e.id DESC
	`, eventColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepositoryImpl) ListByCreator(ctx context.Context, creatorID int) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN accounts a ON a.id = e.creator_id
		WHERE e.creator_id = $1
		ORDER BY e.created_at DESC, e.id DESC
	`

	rows, err := r.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepositoryImpl) ListByCategory(ctx context.Context, category model.Category) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN accounts a ON a.id = e.creator_id
		WHERE e.category = $1
		ORDER BY e.scheduled_date DESC, e.id DESC
	`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

// ExistsByCreatorAndTitle 大小寫敏感的完全比對
func (r *EventRepositoryImpl) ExistsByCreatorAndTitle(ctx context.Context, creatorID int, title string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE creator_id = $1 AND title = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, creatorID, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		add("title", *params.Title)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.ScheduledDate != nil {
		add("scheduled_date", *params.ScheduledDate)
	}
	if params.Status != nil {
		add("status", *params.Status)
	}
	if params.MaxViewers != nil {
		add("max_viewers", *params.MaxViewers)
	}
	if params.Tags != nil {
		add("tags", *params.Tags)
	}
	if params.StreamURL != nil {
		add("stream_url", *params.StreamURL)
	}
	if params.Thumbnail != nil {
		add("thumbnail", *params.Thumbnail)
	}
	if params.IsFeatured != nil {
		add("is_featured", *params.IsFeatured)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	add("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		WITH e AS (
			UPDATE events
			SET %s
			WHERE id = $%d
			RETURNING *
		)
		SELECT %s
		FROM e
		JOIN accounts a ON a.id = e.creator_id
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// UpdateStatus 只更新狀態與 updated_at，供自動生命週期轉換使用
func (r *EventRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.EventStatus, updatedAt time.Time) error {
	query := `
		UPDATE events
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, status, updatedAt.UTC(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events`)
	return err
}

func (r *EventRepositoryImpl) CountByCreator(ctx context.Context, creatorID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE creator_id = $1`, creatorID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
