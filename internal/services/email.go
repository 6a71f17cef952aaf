package services

import (
	"context"
	"fmt"
	"log"

	"weddingly/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRSVPNotification sends the new-RSVP email to the site owner using the
// "rsvp_notification" template.
func (s *emailService) SendRSVPNotification(ctx context.Context, data *domain.RSVPNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp notification data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_notification template: %w", err)
	}
	if err := s.mailer.Send(data.OwnerEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rsvp notification email: %w", err)
	}
	log.Printf("[EMAIL] RSVP notification sent to %s", data.OwnerEmail)
	return nil
}
