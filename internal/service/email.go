package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) send(emailType, to, subject, body string, logArgs ...any) error {
	if s.isDev {
		args := append([]any{"type", emailType, "to", to, "subject", subject}, logArgs...)
		slog.Info("email sent (dev mode)", args...)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", emailType, "to", to)
	}
	return err
}

// SendConfirmationEmail sends the sign-up confirmation link. The account
// cannot sign in until the link is followed.
func (s *EmailService) SendConfirmationEmail(email, token string) error {
	confirmURL := fmt.Sprintf("%s/auth/confirm/%s", s.appURL, token)
	subject, body := confirmationEmailTemplate(confirmURL, s.appName)

	return s.send("email_confirm", email, subject, body, "url", confirmURL)
}

func (s *EmailService) SendPasswordResetEmail(email, token string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password/%s", s.appURL, token)
	subject, body := passwordResetEmailTemplate(resetURL, s.appName)

	return s.send("password_reset", email, subject, body, "url", resetURL)
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	profileURL := fmt.Sprintf("%s/profile", s.appURL)
	subject, body := welcomeEmailTemplate(name, profileURL, s.appName)

	return s.send("welcome", email, subject, body)
}

func (s *EmailService) SendAccountDeletedEmail(email, name string) error {
	subject, body := accountDeletedEmailTemplate(name, s.appName)

	return s.send("account_deleted", email, subject, body)
}
