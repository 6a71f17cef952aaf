package domain

import (
	"context"
	"time"
)

// RSVP is a guest response for a site. Records are append-only; there is no
// edit or delete.
// swagger:model RSVP
type RSVP struct {
	ID                  string    `json:"id"`
	SiteID              string    `json:"site_id"`
	FullName            string    `json:"full_name"`
	Email               *string   `json:"email"`
	Attending           bool      `json:"attending"`
	DietaryRestrictions *string   `json:"dietary_restrictions"`
	Message             *string   `json:"message"`
	CreatedAt           time.Time `json:"created_at"`
}

// RSVPInput is a guest submission. Attending must be an explicit boolean in
// the request body; the controller validates its presence.
type RSVPInput struct {
	FullName            string  `json:"full_name"`
	Email               *string `json:"email"`
	Attending           bool    `json:"attending"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	Message             *string `json:"message"`
}

// RSVPAnalytics are counts derived from the RSVP list on read.
// swagger:model RSVPAnalytics
type RSVPAnalytics struct {
	Total          int `json:"total"`
	TotalAttending int `json:"total_attending"`
	TotalDeclined  int `json:"total_declined"`
}

// RSVPRepository defines the interface for RSVP storage.
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	ListBySiteID(ctx context.Context, siteID string) ([]*RSVP, error)
}

// RSVPService defines guest submission and owner reporting.
type RSVPService interface {
	Submit(ctx context.Context, slug string, input *RSVPInput) (*RSVP, error)
	List(ctx context.Context, ownerID string) ([]*RSVP, *RSVPAnalytics, error)
	ExportCSV(ctx context.Context, ownerID string) (filename string, csv []byte, err error)
}
