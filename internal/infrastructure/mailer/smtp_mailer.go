package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"skillswap/internal/domain/service"
	"skillswap/pkg/logger"
)

// SMTPMailer sends notification emails through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

func NewSMTPMailer(host, port, from, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
	}
}

var _ service.EmailSender = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.from == "" || m.password == "" {
		return fmt.Errorf("smtp credentials are not configured")
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// LogSMSSender is the wired SMS implementation: it records the send
// instead of calling out to a gateway.
type LogSMSSender struct{}

func NewLogSMSSender() *LogSMSSender {
	return &LogSMSSender{}
}

var _ service.SMSSender = (*LogSMSSender)(nil)

func (s *LogSMSSender) SendSMS(ctx context.Context, phone, body string) error {
	logger.Info("SMS to %s: %s", phone, body)
	return nil
}
