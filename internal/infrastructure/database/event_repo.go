package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
	"attendo/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository using pgx.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates an EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, title, description, date, location, capacity, created_at, updated_at`

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e                     entities.Event
		id                    int64
		description, location pgtype.Text
		date                  pgtype.Timestamptz
		capacity              pgtype.Int4
		createdAt, updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &e.Title, &description, &date, &location, &capacity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.ID = uint(id)
	e.Description = textToString(description)
	e.Date = pgtypeTimestamptzToTime(date)
	e.Location = textToString(location)
	e.Capacity = int4ToCapacity(capacity)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, date, location, capacity)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		event.Title, stringToText(event.Description),
		pgtype.Timestamptz{Time: event.Date, Valid: true},
		stringToText(event.Location), capacityToInt4(event.Capacity),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	event.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, int64(id))
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []entities.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, date = $4, location = $5, capacity = $6, updated_at = now()
		 WHERE id = $1`,
		int64(event.ID), event.Title, stringToText(event.Description),
		pgtype.Timestamptz{Time: event.Date, Valid: true},
		stringToText(event.Location), capacityToInt4(event.Capacity),
	)
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, int64(id))
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	return tag.RowsAffected(), nil
}
