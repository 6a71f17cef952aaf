package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"weddingly/internal/domain"
)

// csvHeader is the export header row, stable because existing spreadsheets
// depend on it.
var csvHeader = []string{"Full Name", "Email", "Attending", "Dietary Restrictions", "Message", "Submitted At"}

type rsvpService struct {
	siteRepo     domain.SiteRepository
	rsvpRepo     domain.RSVPRepository
	userRepo     domain.UserRepository
	emailService domain.EmailService
}

// NewRSVPService creates the RSVP service. emailService may be nil, in which
// case owner notifications are skipped.
func NewRSVPService(siteRepo domain.SiteRepository, rsvpRepo domain.RSVPRepository, userRepo domain.UserRepository, emailService domain.EmailService) domain.RSVPService {
	return &rsvpService{
		siteRepo:     siteRepo,
		rsvpRepo:     rsvpRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Submit records a guest response against a published site. An unpublished
// site answers exactly like a missing one, so the slug's existence is not
// revealed. The site password is deliberately not checked: anyone with the
// link can RSVP.
func (s *rsvpService) Submit(ctx context.Context, slug string, input *domain.RSVPInput) (*domain.RSVP, error) {
	site, err := s.siteRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	if !site.IsPublished {
		return nil, domain.ErrNotFound
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domain.NewValidationError("full_name is required")
	}

	rsvp := &domain.RSVP{
		SiteID:              site.ID,
		FullName:            fullName,
		Email:               input.Email,
		Attending:           input.Attending,
		DietaryRestrictions: input.DietaryRestrictions,
		Message:             input.Message,
		CreatedAt:           time.Now(),
	}
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	if s.emailService != nil {
		s.notifyOwner(ctx, site, rsvp)
	}
	return rsvp, nil
}

// notifyOwner sends the new-RSVP email. Failures are logged and never
// surfaced to the guest.
func (s *rsvpService) notifyOwner(ctx context.Context, site *domain.WeddingSite, rsvp *domain.RSVP) {
	owner, err := s.userRepo.GetByID(ctx, site.UserID)
	if err != nil {
		log.Printf("[RSVP] could not load owner for notification: %v", err)
		return
	}
	message := ""
	if rsvp.Message != nil {
		message = *rsvp.Message
	}
	data := &domain.RSVPNotificationEmailData{
		OwnerEmail: owner.Email,
		SiteSlug:   site.Slug,
		GuestName:  rsvp.FullName,
		Attending:  rsvp.Attending,
		Message:    message,
	}
	if err := s.emailService.SendRSVPNotification(ctx, data); err != nil {
		log.Printf("[RSVP] notification email failed: %v", err)
	}
}

// List returns the owner's RSVPs newest-first with analytics computed in a
// single pass. An owner with no site yet gets an empty list and zero counts.
func (s *rsvpService) List(ctx context.Context, ownerID string) ([]*domain.RSVP, *domain.RSVPAnalytics, error) {
	site, err := s.siteRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.RSVP{}, &domain.RSVPAnalytics{}, nil
		}
		return nil, nil, fmt.Errorf("get site: %w", err)
	}
	rsvps, err := s.rsvpRepo.ListBySiteID(ctx, site.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list rsvps: %w", err)
	}
	analytics := &domain.RSVPAnalytics{Total: len(rsvps)}
	for _, r := range rsvps {
		if r.Attending {
			analytics.TotalAttending++
		} else {
			analytics.TotalDeclined++
		}
	}
	return rsvps, analytics, nil
}

// ExportCSV renders the owner's RSVP list as CSV text: the fixed header row,
// then one fully quoted row per RSVP with "Yes"/"No" for attendance.
func (s *rsvpService) ExportCSV(ctx context.Context, ownerID string) (string, []byte, error) {
	site, err := s.siteRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrNotFound
		}
		return "", nil, fmt.Errorf("get site: %w", err)
	}
	rsvps, err := s.rsvpRepo.ListBySiteID(ctx, site.ID)
	if err != nil {
		return "", nil, fmt.Errorf("list rsvps: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, r := range rsvps {
		attending := "No"
		if r.Attending {
			attending = "Yes"
		}
		cells := []string{
			r.FullName,
			strOrEmpty(r.Email),
			attending,
			strOrEmpty(r.DietaryRestrictions),
			strOrEmpty(r.Message),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		b.WriteString("\n")
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`)
		}
	}

	filename := fmt.Sprintf("rsvps-%s.csv", site.Slug)
	return filename, []byte(b.String()), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
