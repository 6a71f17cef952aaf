package postgres

import (
	"context"
	"database/sql"

	"weddingly/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (site_id, full_name, email, attending, dietary_restrictions, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		rsvp.SiteID, rsvp.FullName, rsvp.Email, rsvp.Attending,
		rsvp.DietaryRestrictions, rsvp.Message, rsvp.CreatedAt,
	).Scan(&rsvp.ID)
}

func (r *rsvpRepository) ListBySiteID(ctx context.Context, siteID string) ([]*domain.RSVP, error) {
	query := `
		SELECT id, site_id, full_name, email, attending, dietary_restrictions, message, created_at
		FROM rsvps
		WHERE site_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{}
		if err := rows.Scan(&rsvp.ID, &rsvp.SiteID, &rsvp.FullName, &rsvp.Email, &rsvp.Attending, &rsvp.DietaryRestrictions, &rsvp.Message, &rsvp.CreatedAt); err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}
