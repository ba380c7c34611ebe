package email

import (
	"context"
	"fmt"
	"io"

	"mediation-scheduler/internal/config"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers email over SMTP using gomail
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates an SMTP sender from application configuration
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers one message. gomail has no context support, so the dial and
// send run in a goroutine and the context deadline is enforced here; an
// abandoned send finishes in the background without blocking the caller.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		content := att.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Filename, settings...)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return Receipt{}, fmt.Errorf("smtp send to %s: %w", msg.To, err)
		}
		return Receipt{DeliveryID: uuid.NewString()}, nil
	case <-ctx.Done():
		return Receipt{}, fmt.Errorf("smtp send to %s: %w", msg.To, ctx.Err())
	}
}
