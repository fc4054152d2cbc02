package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// Config captures the SMTP settings. An empty Host disables dispatch.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Sender delivers welcome messages over SMTP.
type Sender struct {
	cfg Config
	log zerolog.Logger
}

func NewSender(cfg Config, log zerolog.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// Enabled reports whether an SMTP host is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.Host != ""
}

// Send delivers a single welcome message.
func (s *Sender) Send(msg domain.WelcomeEmail) error {
	e := email.NewEmail()
	e.From = msg.FromEmail
	e.To = msg.RecipientList
	e.Subject = msg.Subject
	e.Text = []byte(msg.Message)

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.log.Info().Strs("to", msg.RecipientList).Str("subject", msg.Subject).Msg("welcome email sent")
	return nil
}
