package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/foliohq/folio/internal/config"
)

// smtpMailer sends multipart text+HTML mail through a configured SMTP relay.
type smtpMailer struct {
	client *mail.Client
	cfg    config.Mail
}

func newSMTPMailer(cfg config.Mail) (Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &smtpMailer{client: client, cfg: cfg}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	if htmlBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	}

	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *smtpMailer) Enabled() bool { return true }
