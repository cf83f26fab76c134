package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends outreach emails via SendGrid
type EmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service instance
func NewEmailService(apiKey, fromEmail, fromName string) *EmailService {
	if fromEmail == "" {
		fromEmail = "faris@farisai.app"
	}
	if fromName == "" {
		fromName = "Faris AI"
	}
	return &EmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Configured reports whether an API key is present
func (es *EmailService) Configured() bool {
	return es.apiKey != ""
}

// SendOutreachEmail sends a single outreach email to a lead contact
func (es *EmailService) SendOutreachEmail(toEmail, toName, subject, body string) error {
	if es.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}
	if subject == "" {
		subject = "رسالة من " + es.fromName
	}

	from := mail.NewEmail(es.fromName, es.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(es.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
