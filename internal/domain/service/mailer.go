package service

import "context"

// Mailer defines the interface for sending transactional email.
type Mailer interface {
	// SendConfirmationEmail delivers the email confirmation token to the user.
	SendConfirmationEmail(ctx context.Context, toName, toEmail, token string) error
}
