// Package mail provides the SendGrid-backed Mailer implementation.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"gatedesk/config"
	"gatedesk/internal/domain/service"
)

const confirmationSubject = "Confirm your email address"

// sendgridMailer implements the Mailer interface using the SendGrid API.
type sendgridMailer struct {
	client         *sendgrid.Client
	fromName       string
	fromEmail      string
	confirmBaseURL string
}

// NewSendGridMailer is the constructor for sendgridMailer.
func NewSendGridMailer(cfg *config.MailConfig) (service.Mailer, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("sendgrid api key must be provided")
	}
	return &sendgridMailer{
		client:         sendgrid.NewSendClient(cfg.APIKey),
		fromName:       cfg.FromName,
		fromEmail:      cfg.FromEmail,
		confirmBaseURL: strings.TrimRight(cfg.ConfirmBaseURL, "/"),
	}, nil
}

// SendConfirmationEmail delivers the email confirmation token to the user.
func (m *sendgridMailer) SendConfirmationEmail(ctx context.Context, toName, toEmail, token string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)

	confirmURL := fmt.Sprintf("%s?token=%s", m.confirmBaseURL, token)
	plainText := fmt.Sprintf("Your confirmation code is %s. You can also confirm at %s", token, confirmURL)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Confirm your email</h2>
				<p>Your confirmation code is <strong>%s</strong>.</p>
				<p><a href="%s">Confirm email address</a></p>
			</body>
		</html>
	`, token, confirmURL)

	message := mail.NewSingleEmail(from, confirmationSubject, recipient, plainText, htmlContent)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send confirmation email")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
