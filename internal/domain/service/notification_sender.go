package service

import "context"

// EmailSender delivers a rendered notification over email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a rendered notification over SMS.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, body string) error
}
