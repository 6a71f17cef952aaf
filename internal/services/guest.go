package services

import (
	"context"
	"errors"
	"fmt"

	"weddingly/internal/domain"
)

type guestService struct {
	siteRepo  domain.SiteRepository
	eventRepo domain.EventRepository
	hasher    domain.PasswordHasher
}

// NewGuestService creates the guest access gateway: publish gating, password
// gating, and redaction for the public read path.
func NewGuestService(siteRepo domain.SiteRepository, eventRepo domain.EventRepository, hasher domain.PasswordHasher) domain.GuestService {
	return &guestService{
		siteRepo:  siteRepo,
		eventRepo: eventRepo,
		hasher:    hasher,
	}
}

// ResolveSite is a pure read path. Unknown slug: ErrNotFound. Unpublished:
// ErrNotPublished, regardless of any password. Protected with no password
// supplied: a bare requires-password result that leaks no other field.
// Protected with a wrong password: ErrInvalidSitePassword. Otherwise the
// redacted site, events in display order.
func (s *guestService) ResolveSite(ctx context.Context, slug string, password *string) (*domain.GuestSiteResult, error) {
	site, err := s.siteRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	if !site.IsPublished {
		return nil, domain.ErrNotPublished
	}
	if site.HasPassword() {
		if password == nil {
			return &domain.GuestSiteResult{RequiresPassword: true}, nil
		}
		if err := s.hasher.Compare(*site.PasswordHash, *site.PasswordSalt, *password); err != nil {
			return nil, domain.ErrInvalidSitePassword
		}
	}
	events, err := s.eventRepo.ListBySiteID(ctx, site.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	site.Events = events
	return &domain.GuestSiteResult{Site: domain.NewPublicSite(site)}, nil
}
