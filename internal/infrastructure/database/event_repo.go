package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"agenda/internal/domain"
	"agenda/internal/domain/entities"
	"agenda/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = "id, name, client, venue, date, start_time, end_time, price, notes, created_at, updated_at"

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	const stmt = `
INSERT INTO events (name, client, venue, date, start_time, end_time, price, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, stmt,
			event.Name,
			event.Client,
			event.Venue,
			event.Date,
			clockToPg(event.StartTime),
			optClockToPg(event.EndTime),
			event.Price,
			event.Notes,
		).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE id = $1"

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context, filter output.EventFilter) ([]entities.Event, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []entities.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	const stmt = `
UPDATE events
SET name = $2, client = $3, venue = $4, date = $5, start_time = $6,
    end_time = $7, price = $8, notes = $9, updated_at = now()
WHERE id = $1
RETURNING updated_at`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, stmt,
			event.ID,
			event.Name,
			event.Client,
			event.Venue,
			event.Date,
			clockToPg(event.StartTime),
			optClockToPg(event.EndTime),
			event.Price,
			event.Notes,
		).Scan(&event.UpdatedAt)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, "DELETE FROM events WHERE date < $1", cutoff)
		if err != nil {
			return err
		}
		removed = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete stale events: %w", err)
	}
	return removed, nil
}

func (r *EventRepository) MonthlyTotals(ctx context.Context, year int) ([]output.MonthTotal, error) {
	const query = `
SELECT EXTRACT(MONTH FROM date)::int AS month,
       COUNT(*)::int AS total,
       COALESCE(SUM(price), 0)::float8 AS revenue
FROM events
WHERE EXTRACT(YEAR FROM date) = $1
GROUP BY 1
ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []output.MonthTotal
	for rows.Next() {
		var t output.MonthTotal
		if err := rows.Scan(&t.Month, &t.Total, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate monthly totals: %w", rows.Err())
	}
	return totals, nil
}

// buildListQuery assembles the WHERE clause for List. All active predicates
// combine with AND; results always come back ordered by date then start time.
func buildListQuery(filter output.EventFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.FromDate != nil {
		clauses = append(clauses, "date >= "+arg(*filter.FromDate))
	}
	if filter.ToDate != nil {
		clauses = append(clauses, "date <= "+arg(*filter.ToDate))
	}
	if filter.Venue != "" {
		clauses = append(clauses, "venue ILIKE "+arg("%"+filter.Venue+"%"))
	}
	if filter.Year != 0 {
		clauses = append(clauses, "EXTRACT(YEAR FROM date) = "+arg(filter.Year))
		if filter.Month != 0 {
			clauses = append(clauses, "EXTRACT(MONTH FROM date) = "+arg(filter.Month))
		}
	}

	query := "SELECT " + eventColumns + " FROM events"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date ASC, start_time ASC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	return query, args
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		event     entities.Event
		startTime pgtype.Time
		endTime   pgtype.Time
	)
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Client,
		&event.Venue,
		&event.Date,
		&startTime,
		&endTime,
		&event.Price,
		&event.Notes,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.StartTime = pgToClock(startTime)
	event.EndTime = pgToOptClock(endTime)
	return &event, nil
}
