package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"weddingly/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

// ReplaceForSite deletes every event owned by the site and inserts the given
// list in order, all inside one transaction. Positions are taken from the
// events as passed in (dense, zero-based).
func (r *eventRepository) ReplaceForSite(ctx context.Context, siteID string, events []*domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace events: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE site_id = $1`, siteID); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}

	insert := `
		INSERT INTO events (site_id, title, date, time, location, address, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	for _, e := range events {
		err := tx.QueryRowContext(ctx, insert,
			siteID, e.Title, e.Date, e.Time, e.Location, e.Address, e.Position, e.CreatedAt, e.UpdatedAt,
		).Scan(&e.ID)
		if err != nil {
			return fmt.Errorf("insert event %q: %w", e.Title, err)
		}
		e.SiteID = siteID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace events: %w", err)
	}
	return nil
}

func (r *eventRepository) ListBySiteID(ctx context.Context, siteID string) ([]*domain.Event, error) {
	query := `
		SELECT id, site_id, title, date, time, location, address, position, created_at, updated_at
		FROM events
		WHERE site_id = $1
		ORDER BY position ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.SiteID, &e.Title, &e.Date, &e.Time, &e.Location, &e.Address, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
