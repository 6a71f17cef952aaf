package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"weddingly/internal/domain"
)

// dateLayouts are the accepted formats for submitted date strings.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

type siteService struct {
	siteRepo  domain.SiteRepository
	eventRepo domain.EventRepository
	hasher    domain.PasswordHasher
}

// NewSiteService creates the reconciliation service that merges form
// submissions into the stored site aggregate.
func NewSiteService(siteRepo domain.SiteRepository, eventRepo domain.EventRepository, hasher domain.PasswordHasher) domain.SiteService {
	return &siteService{
		siteRepo:  siteRepo,
		eventRepo: eventRepo,
		hasher:    hasher,
	}
}

// Save upserts the owner's site. Create-vs-update is decided by looking up
// the site by ownerID; identity is never changed on update. When the input
// carries an events list (even empty) the stored list is wholesale-replaced
// in submitted order. Slug collisions surface as ErrSlugTaken and the caller
// retries with a different slug.
func (s *siteService) Save(ctx context.Context, ownerID string, input *domain.SiteInput) (*domain.WeddingSite, error) {
	if ownerID == "" {
		return nil, domain.NewValidationError("owner is required")
	}

	weddingDate, err := parseDatePtr(input.WeddingDate)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid wedding_date: %v", err))
	}

	now := time.Now()
	var newEvents []*domain.Event
	if input.Events != nil {
		newEvents = make([]*domain.Event, 0, len(input.Events))
		for i, in := range input.Events {
			date, err := parseDate(in.Date)
			if err != nil {
				return nil, domain.NewValidationError(fmt.Sprintf("invalid date for event %q: %v", in.Title, err))
			}
			newEvents = append(newEvents, &domain.Event{
				Title:     in.Title,
				Date:      date,
				Time:      in.Time,
				Location:  in.Location,
				Address:   in.Address,
				Position:  i,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	site, err := s.siteRepo.GetByUserID(ctx, ownerID)
	switch {
	case err == nil:
		s.applyInput(site, input, weddingDate, now)
		if err := s.applyPassword(site, input.Password); err != nil {
			return nil, err
		}
		if err := s.siteRepo.Update(ctx, site); err != nil {
			if errors.Is(err, domain.ErrSlugTaken) {
				return nil, err
			}
			return nil, fmt.Errorf("update site: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		site = &domain.WeddingSite{UserID: ownerID, CreatedAt: now}
		s.applyInput(site, input, weddingDate, now)
		if site.Slug == "" {
			site.Slug = synthesizeSlug(input.BrideName, input.GroomName)
		}
		if err := s.applyPassword(site, input.Password); err != nil {
			return nil, err
		}
		if err := s.siteRepo.Create(ctx, site); err != nil {
			if errors.Is(err, domain.ErrSlugTaken) {
				return nil, err
			}
			return nil, fmt.Errorf("create site: %w", err)
		}
	default:
		return nil, fmt.Errorf("get site: %w", err)
	}

	// Replace events only when the submission carries a list. A failure here
	// fails the whole save; the replace is idempotent, so retrying with the
	// same input is safe.
	if input.Events != nil {
		if err := s.eventRepo.ReplaceForSite(ctx, site.ID, newEvents); err != nil {
			return nil, fmt.Errorf("replace events: %w", err)
		}
	}

	events, err := s.eventRepo.ListBySiteID(ctx, site.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	site.Events = events
	return site, nil
}

func (s *siteService) GetByOwner(ctx context.Context, ownerID string) (*domain.WeddingSite, error) {
	site, err := s.siteRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	events, err := s.eventRepo.ListBySiteID(ctx, site.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	site.Events = events
	return site, nil
}

// applyInput copies the scalar form fields onto the site. Slug is only
// replaced when submitted non-empty, so an update without a slug keeps the
// existing one.
func (s *siteService) applyInput(site *domain.WeddingSite, input *domain.SiteInput, weddingDate *time.Time, now time.Time) {
	if slug := strings.TrimSpace(input.Slug); slug != "" {
		site.Slug = slug
	}
	site.IsPublished = input.IsPublished

	site.PrimaryColor = input.PrimaryColor
	site.SecondaryColor = input.SecondaryColor
	site.AccentColor = input.AccentColor
	site.HeadingFont = input.HeadingFont
	site.BodyFont = input.BodyFont

	site.HeroEnabled = input.HeroEnabled
	site.BrideName = input.BrideName
	site.GroomName = input.GroomName
	site.WeddingDate = weddingDate
	site.HeroImageURL = input.HeroImageURL

	site.StoryEnabled = input.StoryEnabled
	site.StoryTitle = input.StoryTitle
	site.StoryText = input.StoryText
	site.StoryImage1URL = input.StoryImage1URL
	site.StoryImage2URL = input.StoryImage2URL

	site.GalleryEnabled = input.GalleryEnabled
	site.GalleryTitle = input.GalleryTitle
	site.GalleryImages = input.GalleryImages

	site.RegistryEnabled = input.RegistryEnabled
	site.RegistryTitle = input.RegistryTitle
	site.RegistryText = input.RegistryText

	site.MusicEnabled = input.MusicEnabled
	site.MusicTitle = input.MusicTitle
	site.MusicURL = input.MusicURL

	site.UpdatedAt = now
}

// applyPassword enforces the tri-state password field: nil leaves the stored
// hash alone, empty string clears it, anything else is hashed and stored.
func (s *siteService) applyPassword(site *domain.WeddingSite, password *string) error {
	if password == nil {
		return nil
	}
	if *password == "" {
		site.PasswordHash = nil
		site.PasswordSalt = nil
		return nil
	}
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, *password)
	if err != nil {
		return fmt.Errorf("failed to hash site password: %w", err)
	}
	site.PasswordHash = &hash
	site.PasswordSalt = &salt
	return nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// synthesizeSlug derives a slug from the couple's names ("jane-and-john");
// with no names it falls back to a timestamp-based slug. Uniqueness is still
// enforced at the repository boundary.
func synthesizeSlug(brideName, groomName *string) string {
	bride := ""
	if brideName != nil {
		bride = strings.TrimSpace(*brideName)
	}
	groom := ""
	if groomName != nil {
		groom = strings.TrimSpace(*groomName)
	}
	if bride != "" || groom != "" {
		combined := strings.ToLower(bride + "-and-" + groom)
		slug := nonAlphanumeric.ReplaceAllString(combined, "-")
		slug = strings.Trim(slug, "-")
		if slug != "" {
			return slug
		}
	}
	return fmt.Sprintf("wedding-%d", time.Now().UnixMilli())
}
