package domain

import (
	"context"
	"time"
)

// WeddingSite is one couple's wedding website configuration aggregate.
// A user owns at most one site; the slug identifies the published site to
// guests. The guest password is stored hashed with the same scheme as the
// account password and never serialized.
// swagger:model WeddingSite
type WeddingSite struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Slug         string  `json:"slug"`
	PasswordHash *string `json:"-"`
	PasswordSalt *string `json:"-"`
	IsPublished  bool    `json:"is_published"`

	// Global styles
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	HeadingFont    string `json:"heading_font"`
	BodyFont       string `json:"body_font"`

	// Hero section
	HeroEnabled  bool       `json:"hero_enabled"`
	BrideName    *string    `json:"bride_name"`
	GroomName    *string    `json:"groom_name"`
	WeddingDate  *time.Time `json:"wedding_date"`
	HeroImageURL *string    `json:"hero_image_url"`

	// Story section
	StoryEnabled   bool    `json:"story_enabled"`
	StoryTitle     *string `json:"story_title"`
	StoryText      *string `json:"story_text"`
	StoryImage1URL *string `json:"story_image1_url"`
	StoryImage2URL *string `json:"story_image2_url"`

	// Gallery section
	GalleryEnabled bool     `json:"gallery_enabled"`
	GalleryTitle   *string  `json:"gallery_title"`
	GalleryImages  []string `json:"gallery_images"`

	// Registry section
	RegistryEnabled bool    `json:"registry_enabled"`
	RegistryTitle   *string `json:"registry_title"`
	RegistryText    *string `json:"registry_text"`

	// Music section
	MusicEnabled bool    `json:"music_enabled"`
	MusicTitle   *string `json:"music_title"`
	MusicURL     *string `json:"music_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Events []*Event `json:"events"`
}

// HasPassword reports whether guest access requires a password.
func (s *WeddingSite) HasPassword() bool {
	return s.PasswordHash != nil && *s.PasswordHash != ""
}

// Event is a child of WeddingSite: one entry of the ordered events list
// (ceremony, reception, ...). Position is dense and zero-based per site
// after any replace; events have no identity outside their parent site.
// swagger:model Event
type Event struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Address   string    `json:"address"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventInput is one submitted event row. Date is a string normalized by the
// reconciliation service (RFC3339 or YYYY-MM-DD).
type EventInput struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Address  string `json:"address"`
}

// SiteInput is the form submission reconciled into the stored aggregate.
// Scalar fields replace the stored values wholesale. Events semantics:
// nil = leave stored events untouched, non-nil (including empty) = replace.
// Password semantics: nil = unchanged, "" = cleared, non-empty = set.
type SiteInput struct {
	Slug        string  `json:"slug"`
	Password    *string `json:"password"`
	IsPublished bool    `json:"is_published"`

	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	HeadingFont    string `json:"heading_font"`
	BodyFont       string `json:"body_font"`

	HeroEnabled  bool    `json:"hero_enabled"`
	BrideName    *string `json:"bride_name"`
	GroomName    *string `json:"groom_name"`
	WeddingDate  *string `json:"wedding_date"`
	HeroImageURL *string `json:"hero_image_url"`

	StoryEnabled   bool    `json:"story_enabled"`
	StoryTitle     *string `json:"story_title"`
	StoryText      *string `json:"story_text"`
	StoryImage1URL *string `json:"story_image1_url"`
	StoryImage2URL *string `json:"story_image2_url"`

	GalleryEnabled bool     `json:"gallery_enabled"`
	GalleryTitle   *string  `json:"gallery_title"`
	GalleryImages  []string `json:"gallery_images"`

	RegistryEnabled bool    `json:"registry_enabled"`
	RegistryTitle   *string `json:"registry_title"`
	RegistryText    *string `json:"registry_text"`

	MusicEnabled bool    `json:"music_enabled"`
	MusicTitle   *string `json:"music_title"`
	MusicURL     *string `json:"music_url"`

	Events []EventInput `json:"events"`
}

// PublicSite is the guest-facing view of a site. It deliberately has no
// password or user_id fields so they cannot leak through serialization.
// swagger:model PublicSite
type PublicSite struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	IsPublished bool   `json:"is_published"`

	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	HeadingFont    string `json:"heading_font"`
	BodyFont       string `json:"body_font"`

	HeroEnabled  bool       `json:"hero_enabled"`
	BrideName    *string    `json:"bride_name"`
	GroomName    *string    `json:"groom_name"`
	WeddingDate  *time.Time `json:"wedding_date"`
	HeroImageURL *string    `json:"hero_image_url"`

	StoryEnabled   bool    `json:"story_enabled"`
	StoryTitle     *string `json:"story_title"`
	StoryText      *string `json:"story_text"`
	StoryImage1URL *string `json:"story_image1_url"`
	StoryImage2URL *string `json:"story_image2_url"`

	GalleryEnabled bool     `json:"gallery_enabled"`
	GalleryTitle   *string  `json:"gallery_title"`
	GalleryImages  []string `json:"gallery_images"`

	RegistryEnabled bool    `json:"registry_enabled"`
	RegistryTitle   *string `json:"registry_title"`
	RegistryText    *string `json:"registry_text"`

	MusicEnabled bool    `json:"music_enabled"`
	MusicTitle   *string `json:"music_title"`
	MusicURL     *string `json:"music_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Events []*Event `json:"events"`
}

// NewPublicSite builds the redacted guest view from a stored site.
func NewPublicSite(s *WeddingSite) *PublicSite {
	return &PublicSite{
		ID:              s.ID,
		Slug:            s.Slug,
		IsPublished:     s.IsPublished,
		PrimaryColor:    s.PrimaryColor,
		SecondaryColor:  s.SecondaryColor,
		AccentColor:     s.AccentColor,
		HeadingFont:     s.HeadingFont,
		BodyFont:        s.BodyFont,
		HeroEnabled:     s.HeroEnabled,
		BrideName:       s.BrideName,
		GroomName:       s.GroomName,
		WeddingDate:     s.WeddingDate,
		HeroImageURL:    s.HeroImageURL,
		StoryEnabled:    s.StoryEnabled,
		StoryTitle:      s.StoryTitle,
		StoryText:       s.StoryText,
		StoryImage1URL:  s.StoryImage1URL,
		StoryImage2URL:  s.StoryImage2URL,
		GalleryEnabled:  s.GalleryEnabled,
		GalleryTitle:    s.GalleryTitle,
		GalleryImages:   s.GalleryImages,
		RegistryEnabled: s.RegistryEnabled,
		RegistryTitle:   s.RegistryTitle,
		RegistryText:    s.RegistryText,
		MusicEnabled:    s.MusicEnabled,
		MusicTitle:      s.MusicTitle,
		MusicURL:        s.MusicURL,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		Events:          s.Events,
	}
}

// GuestSiteResult is the outcome of resolving a slug for a guest: either the
// redacted site, or a bare requires-password signal with no other fields.
type GuestSiteResult struct {
	RequiresPassword bool        `json:"requires_password,omitempty"`
	Site             *PublicSite `json:"site,omitempty"`
}

// SiteRepository defines the interface for wedding site storage.
// Slug and user uniqueness are enforced here: Create and Update return
// ErrSlugTaken on a slug conflict.
type SiteRepository interface {
	Create(ctx context.Context, site *WeddingSite) error
	GetByUserID(ctx context.Context, userID string) (*WeddingSite, error)
	GetBySlug(ctx context.Context, slug string) (*WeddingSite, error)
	Update(ctx context.Context, site *WeddingSite) error
}

// EventRepository defines the interface for event storage. ReplaceForSite
// swaps the full ordered list in one transaction.
type EventRepository interface {
	ReplaceForSite(ctx context.Context, siteID string, events []*Event) error
	ListBySiteID(ctx context.Context, siteID string) ([]*Event, error)
}

// SiteService defines the owner-facing reconciliation logic.
type SiteService interface {
	Save(ctx context.Context, ownerID string, input *SiteInput) (*WeddingSite, error)
	GetByOwner(ctx context.Context, ownerID string) (*WeddingSite, error)
}

// GuestService defines the guest-facing read path (publish gating, password
// gating, redaction).
type GuestService interface {
	ResolveSite(ctx context.Context, slug string, password *string) (*GuestSiteResult, error)
}
