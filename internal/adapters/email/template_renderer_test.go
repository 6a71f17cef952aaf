package email

import (
	"testing"

	"weddingly/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_RSVPNotification(t *testing.T) {
	renderer := NewTemplateRenderer()

	t.Run("renders attending guest with message", func(t *testing.T) {
		subject, html, text, err := renderer.Render("rsvp_notification", &domain.RSVPNotificationEmailData{
			OwnerEmail: "couple@example.com",
			SiteSlug:   "ana-and-luis",
			GuestName:  "Maria Santos",
			Attending:  true,
			Message:    "So happy for you!",
		})
		require.NoError(t, err)
		assert.Equal(t, "New RSVP from Maria Santos for ana-and-luis", subject)
		assert.Contains(t, html, "Maria Santos")
		assert.Contains(t, html, "Yes")
		assert.Contains(t, html, "So happy for you!")
		assert.Contains(t, text, "Attending: Yes")
		assert.Contains(t, text, "Message: So happy for you!")
	})

	t.Run("declined guest without message", func(t *testing.T) {
		_, html, text, err := renderer.Render("rsvp_notification", &domain.RSVPNotificationEmailData{
			SiteSlug:  "ana-and-luis",
			GuestName: "Joao Lima",
			Attending: false,
		})
		require.NoError(t, err)
		assert.Contains(t, html, "No")
		assert.Contains(t, text, "Attending: No")
		assert.NotContains(t, text, "Message:")
	})

	t.Run("html escapes guest input", func(t *testing.T) {
		_, html, _, err := renderer.Render("rsvp_notification", &domain.RSVPNotificationEmailData{
			SiteSlug:  "ana-and-luis",
			GuestName: "<script>alert(1)</script>",
			Attending: true,
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})

	t.Run("unknown template is an error", func(t *testing.T) {
		_, _, _, err := renderer.Render("does_not_exist", nil)
		require.Error(t, err)
	})
}
