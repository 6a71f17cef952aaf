package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"weddingly/internal/domain"
)

// siteColumns is the canonical column list for wedding_sites selects.
const siteColumns = `
	id, user_id, slug, password_hash, password_salt, is_published,
	primary_color, secondary_color, accent_color, heading_font, body_font,
	hero_enabled, bride_name, groom_name, wedding_date, hero_image_url,
	story_enabled, story_title, story_text, story_image1_url, story_image2_url,
	gallery_enabled, gallery_title, gallery_images,
	registry_enabled, registry_title, registry_text,
	music_enabled, music_title, music_url,
	created_at, updated_at`

type siteRepository struct {
	DB *sql.DB
}

func NewSiteRepository(db *sql.DB) domain.SiteRepository {
	return &siteRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSite(row rowScanner) (*domain.WeddingSite, error) {
	s := &domain.WeddingSite{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.Slug, &s.PasswordHash, &s.PasswordSalt, &s.IsPublished,
		&s.PrimaryColor, &s.SecondaryColor, &s.AccentColor, &s.HeadingFont, &s.BodyFont,
		&s.HeroEnabled, &s.BrideName, &s.GroomName, &s.WeddingDate, &s.HeroImageURL,
		&s.StoryEnabled, &s.StoryTitle, &s.StoryText, &s.StoryImage1URL, &s.StoryImage2URL,
		&s.GalleryEnabled, &s.GalleryTitle, pq.Array(&s.GalleryImages),
		&s.RegistryEnabled, &s.RegistryTitle, &s.RegistryText,
		&s.MusicEnabled, &s.MusicTitle, &s.MusicURL,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// slugConflict reports whether err is a unique violation on the slug column.
func slugConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	return strings.Contains(pqErr.Constraint, "slug")
}

func (r *siteRepository) Create(ctx context.Context, s *domain.WeddingSite) error {
	query := `
		INSERT INTO wedding_sites (
			user_id, slug, password_hash, password_salt, is_published,
			primary_color, secondary_color, accent_color, heading_font, body_font,
			hero_enabled, bride_name, groom_name, wedding_date, hero_image_url,
			story_enabled, story_title, story_text, story_image1_url, story_image2_url,
			gallery_enabled, gallery_title, gallery_images,
			registry_enabled, registry_title, registry_text,
			music_enabled, music_title, music_url,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.UserID, s.Slug, s.PasswordHash, s.PasswordSalt, s.IsPublished,
		s.PrimaryColor, s.SecondaryColor, s.AccentColor, s.HeadingFont, s.BodyFont,
		s.HeroEnabled, s.BrideName, s.GroomName, s.WeddingDate, s.HeroImageURL,
		s.StoryEnabled, s.StoryTitle, s.StoryText, s.StoryImage1URL, s.StoryImage2URL,
		s.GalleryEnabled, s.GalleryTitle, pq.Array(s.GalleryImages),
		s.RegistryEnabled, s.RegistryTitle, s.RegistryText,
		s.MusicEnabled, s.MusicTitle, s.MusicURL,
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if slugConflict(err) {
			return domain.ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *siteRepository) GetByUserID(ctx context.Context, userID string) (*domain.WeddingSite, error) {
	query := `SELECT` + siteColumns + ` FROM wedding_sites WHERE user_id = $1`
	s, err := scanSite(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *siteRepository) GetBySlug(ctx context.Context, slug string) (*domain.WeddingSite, error) {
	query := `SELECT` + siteColumns + ` FROM wedding_sites WHERE slug = $1`
	s, err := scanSite(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *siteRepository) Update(ctx context.Context, s *domain.WeddingSite) error {
	query := `
		UPDATE wedding_sites SET
			slug = $1, password_hash = $2, password_salt = $3, is_published = $4,
			primary_color = $5, secondary_color = $6, accent_color = $7,
			heading_font = $8, body_font = $9,
			hero_enabled = $10, bride_name = $11, groom_name = $12,
			wedding_date = $13, hero_image_url = $14,
			story_enabled = $15, story_title = $16, story_text = $17,
			story_image1_url = $18, story_image2_url = $19,
			gallery_enabled = $20, gallery_title = $21, gallery_images = $22,
			registry_enabled = $23, registry_title = $24, registry_text = $25,
			music_enabled = $26, music_title = $27, music_url = $28,
			updated_at = $29
		WHERE id = $30
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.Slug, s.PasswordHash, s.PasswordSalt, s.IsPublished,
		s.PrimaryColor, s.SecondaryColor, s.AccentColor,
		s.HeadingFont, s.BodyFont,
		s.HeroEnabled, s.BrideName, s.GroomName,
		s.WeddingDate, s.HeroImageURL,
		s.StoryEnabled, s.StoryTitle, s.StoryText,
		s.StoryImage1URL, s.StoryImage2URL,
		s.GalleryEnabled, s.GalleryTitle, pq.Array(s.GalleryImages),
		s.RegistryEnabled, s.RegistryTitle, s.RegistryText,
		s.MusicEnabled, s.MusicTitle, s.MusicURL,
		s.UpdatedAt, s.ID,
	)
	if err != nil {
		if slugConflict(err) {
			return domain.ErrSlugTaken
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
