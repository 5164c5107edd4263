package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"parlad-backend/internal/config"
)

// Provider is an interface for sending transactional mail
type Provider interface {
	SendPasswordReset(to, token string) error
	Send(to, subject, body string) error
}

// SMTPMailer implements Provider over plain SMTP with auth
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPMailer creates a mailer from config
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}
}

// SendPasswordReset mails a reset token to the user
func (m *SMTPMailer) SendPasswordReset(to, token string) error {
	subject := "Parlad Boutique password reset"
	body := fmt.Sprintf(
		"A password reset was requested for your account.\r\n\r\n"+
			"Reset token: %s\r\n\r\n"+
			"The token expires in 30 minutes. If you did not request this, ignore this mail.\r\n",
		token)
	return m.Send(to, subject, body)
}

// Send delivers a single plain-text mail
func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}

// LogMailer implements Provider by logging instead of sending.
// Used in development and when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(to, token string) error {
	log.Printf("[Mail] password reset for %s, token %s", to, token)
	return nil
}

func (LogMailer) Send(to, subject, _ string) error {
	log.Printf("[Mail] to=%s subject=%q", to, subject)
	return nil
}

// NewProvider returns an SMTP mailer when configured, LogMailer otherwise
func NewProvider(cfg *config.Config) Provider {
	if cfg.Mail.SMTPHost == "" {
		log.Printf("[Mail] SMTP not configured, logging mail instead")
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}
