package domain

import "fmt"

// WelcomeEmail is the registration notification payload. It is always built
// and returned to the caller; actual dispatch is up to the configured
// notifier.
type WelcomeEmail struct {
	Subject       string   `json:"subject"`
	Message       string   `json:"message"`
	FromEmail     string   `json:"from_email"`
	RecipientList []string `json:"recipient_list"`
}

// NewWelcomeEmail builds the welcome message for a freshly registered
// applicant.
func NewWelcomeEmail(username, email, fromEmail string) WelcomeEmail {
	return WelcomeEmail{
		Subject:       "Bienvenido a nuestro sitio",
		Message:       fmt.Sprintf("Hola %s, gracias por registrarte en nuestro sitio.", username),
		FromEmail:     fromEmail,
		RecipientList: []string{email},
	}
}
