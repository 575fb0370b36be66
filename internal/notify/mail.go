package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/tobiajayi/daily-verse-api/pkg/config"
)

// MailNotifier delivers reminders over SMTP as plain text mail.
type MailNotifier struct {
	from     string
	fromName string
	to       string
	host     string
	port     string
	auth     smtp.Auth
}

func NewMailNotifier(cfg *config.Config) *MailNotifier {
	return &MailNotifier{
		from:     cfg.SmtpFrom,
		fromName: "Daily Verse",
		to:       cfg.SmtpTo,
		host:     cfg.SmtpHost,
		port:     cfg.SmtpPort,
		auth:     smtp.PlainAuth("", cfg.SmtpFrom, cfg.SmtpPassword, cfg.SmtpHost),
	}
}

func (m *MailNotifier) Send(_ context.Context, n Notification) error {
	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	body.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.fromName, m.from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", m.to))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n\r\n", n.Title))
	body.WriteString(n.Body)
	if n.Reference != "" {
		body.WriteString(fmt.Sprintf("\r\n\r\n%s", n.Reference))
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, m.auth, m.from, []string{m.to}, body.Bytes()); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
