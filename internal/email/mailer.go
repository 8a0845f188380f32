package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. The site references a ticket email in
// its confirmation copy; delivery stays optional and config gated.
type Sender interface {
	SendTicketConfirmation(to, fullName, ticketType string) error
}

type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SMTPSender struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *SMTPSender) SendTicketConfirmation(to, fullName, ticketType string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Boardroom Summit ticket")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour registration for The Boardroom Summit is confirmed.\nTicket type: %s\n\nSee you there!",
		fullName, ticketType,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send ticket confirmation: %w", err)
	}
	return nil
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct{}

func (NoopSender) SendTicketConfirmation(to, fullName, ticketType string) error {
	return nil
}
