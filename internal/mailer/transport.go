package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"github.com/novalis-io/identity/internal/config"
)

// SMTPSendFunc returns a SendFunc that delivers mail over SMTP.
func SMTPSendFunc(cfg config.SMTPConfig) SendFunc {
	return func(ctx context.Context, to, subject, body string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		msg := []byte("From: " + cfg.From + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" + body)

		var auth smtp.Auth
		if cfg.Username != "" {
			auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		}
		return smtp.SendMail(addr, auth, cfg.From, []string{to}, msg)
	}
}

// LogSendFunc returns a SendFunc that logs messages instead of sending them.
// Used in development when no SMTP host is configured.
func LogSendFunc() SendFunc {
	return func(_ context.Context, to, subject, body string) error {
		log.Printf("[MAIL] to=%s subject=%q\n%s", to, subject, body)
		return nil
	}
}
