package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"weddingly/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRSVPSite(published bool) (*fakeSiteRepo, *fakeUserRepo) {
	siteRepo := newFakeSiteRepo()
	siteRepo.add(&domain.WeddingSite{
		ID:          "site-1",
		UserID:      "user-1",
		Slug:        "ana-and-luis",
		IsPublished: published,
	})
	userRepo := newFakeUserRepo()
	userRepo.add(&domain.User{ID: "user-1", Email: "couple@example.com"})
	return siteRepo, userRepo
}

func TestRSVPService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores rsvp and notifies the owner", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(true)
		rsvpRepo := newFakeRSVPRepo()
		emails := &fakeEmailService{}
		svc := NewRSVPService(siteRepo, rsvpRepo, userRepo, emails)

		rsvp, err := svc.Submit(ctx, "ana-and-luis", &domain.RSVPInput{
			FullName:  "  Maria Santos  ",
			Email:     strPtr("maria@example.com"),
			Attending: true,
			Message:   strPtr("Congrats!"),
		})
		require.NoError(t, err)
		assert.Equal(t, "rsvp-created-1", rsvp.ID)
		assert.Equal(t, "Maria Santos", rsvp.FullName)
		assert.Equal(t, "site-1", rsvp.SiteID)

		require.Len(t, emails.sent, 1)
		assert.Equal(t, "couple@example.com", emails.sent[0].OwnerEmail)
		assert.Equal(t, "Maria Santos", emails.sent[0].GuestName)
		assert.True(t, emails.sent[0].Attending)
	})

	t.Run("unknown slug returns ErrNotFound", func(t *testing.T) {
		svc := NewRSVPService(newFakeSiteRepo(), newFakeRSVPRepo(), newFakeUserRepo(), nil)

		_, err := svc.Submit(ctx, "nobody", &domain.RSVPInput{FullName: "Maria"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unpublished site answers like a missing one", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(false)
		svc := NewRSVPService(siteRepo, newFakeRSVPRepo(), userRepo, nil)

		_, err := svc.Submit(ctx, "ana-and-luis", &domain.RSVPInput{FullName: "Maria"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("blank full name is a validation error", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(true)
		svc := NewRSVPService(siteRepo, newFakeRSVPRepo(), userRepo, nil)

		_, err := svc.Submit(ctx, "ana-and-luis", &domain.RSVPInput{FullName: "   "})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(true)
		emails := &fakeEmailService{err: assert.AnError}
		svc := NewRSVPService(siteRepo, newFakeRSVPRepo(), userRepo, emails)

		rsvp, err := svc.Submit(ctx, "ana-and-luis", &domain.RSVPInput{FullName: "Maria", Attending: false})
		require.NoError(t, err)
		assert.NotEmpty(t, rsvp.ID)
	})
}

func TestRSVPService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("counts attending and declined in one pass", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(true)
		rsvpRepo := newFakeRSVPRepo()
		rsvpRepo.bySiteID["site-1"] = []*domain.RSVP{
			{ID: "r1", Attending: true},
			{ID: "r2", Attending: false},
			{ID: "r3", Attending: true},
		}
		svc := NewRSVPService(siteRepo, rsvpRepo, userRepo, nil)

		rsvps, analytics, err := svc.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, rsvps, 3)
		assert.Equal(t, 3, analytics.Total)
		assert.Equal(t, 2, analytics.TotalAttending)
		assert.Equal(t, 1, analytics.TotalDeclined)
		assert.Equal(t, analytics.Total, analytics.TotalAttending+analytics.TotalDeclined)
	})

	t.Run("owner without a site gets empty list and zero counts", func(t *testing.T) {
		svc := NewRSVPService(newFakeSiteRepo(), newFakeRSVPRepo(), newFakeUserRepo(), nil)

		rsvps, analytics, err := svc.List(ctx, "user-1")
		require.NoError(t, err)
		assert.NotNil(t, rsvps)
		assert.Empty(t, rsvps)
		assert.Equal(t, &domain.RSVPAnalytics{}, analytics)
	})
}

func TestRSVPService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	submitted := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	t.Run("renders header and quoted rows", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(true)
		rsvpRepo := newFakeRSVPRepo()
		rsvpRepo.bySiteID["site-1"] = []*domain.RSVP{
			{
				FullName:            "Maria Santos",
				Email:               strPtr("maria@example.com"),
				Attending:           true,
				DietaryRestrictions: strPtr("vegetarian"),
				Message:             strPtr(`She said "yes"!`),
				CreatedAt:           submitted,
			},
			{
				FullName:  "Joao Lima",
				Attending: false,
				CreatedAt: submitted,
			},
		}
		svc := NewRSVPService(siteRepo, rsvpRepo, userRepo, nil)

		filename, data, err := svc.ExportCSV(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "rsvps-ana-and-luis.csv", filename)

		lines := strings.Split(string(data), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Full Name,Email,Attending,Dietary Restrictions,Message,Submitted At", lines[0])
		assert.Equal(t, `"Maria Santos","maria@example.com","Yes","vegetarian","She said ""yes""!","2026-03-15T18:30:00Z"`, lines[1])
		assert.Equal(t, `"Joao Lima","","No","","","2026-03-15T18:30:00Z"`, lines[2])
	})

	t.Run("no rsvps exports just the header", func(t *testing.T) {
		siteRepo, userRepo := seedRSVPSite(true)
		svc := NewRSVPService(siteRepo, newFakeRSVPRepo(), userRepo, nil)

		filename, data, err := svc.ExportCSV(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "rsvps-ana-and-luis.csv", filename)
		assert.Equal(t, "Full Name,Email,Attending,Dietary Restrictions,Message,Submitted At", string(data))
	})

	t.Run("owner without a site gets ErrNotFound", func(t *testing.T) {
		svc := NewRSVPService(newFakeSiteRepo(), newFakeRSVPRepo(), newFakeUserRepo(), nil)

		_, _, err := svc.ExportCSV(ctx, "user-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
