package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPNotificationEmailData holds data for the new-RSVP notification sent to
// the site owner.
type RSVPNotificationEmailData struct {
	OwnerEmail string
	SiteSlug   string
	GuestName  string
	Attending  bool
	Message    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRSVPNotification(ctx context.Context, data *RSVPNotificationEmailData) error
}
