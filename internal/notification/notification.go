package notification

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
)

// Mailer delivers transactional email. Implementations never block the
// caller's success path; failures are returned for logging only.
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
	Enabled() bool
}

// Texter delivers short text messages over SMS or WhatsApp.
type Texter interface {
	Send(ctx context.Context, to, body string) error
	Enabled() bool
}

// Module provides the notification senders to the Fx graph.
var Module = fx.Provide(NewMailer, NewTexter)

// NewMailer selects the SMTP mailer, or a noop sender when mail transport is
// not configured.
func NewMailer(cfg config.Config, logger *zap.Logger) (Mailer, error) {
	if !cfg.Mail.Enabled() {
		if logger != nil {
			logger.Warn("mail transport not configured; email notifications disabled")
		}
		return noopMailer{}, nil
	}
	return newSMTPMailer(cfg.Mail)
}

// NewTexter selects the Twilio texter, or a noop sender when the messaging
// provider is not configured.
func NewTexter(cfg config.Config, logger *zap.Logger) Texter {
	if !cfg.SMS.Enabled() {
		if logger != nil {
			logger.Warn("messaging provider not configured; text notifications disabled")
		}
		return noopTexter{}
	}
	return newTwilioTexter(cfg.SMS)
}

type noopMailer struct{}

func (noopMailer) Send(context.Context, string, string, string, string) error { return nil }
func (noopMailer) Enabled() bool                                              { return false }

type noopTexter struct{}

func (noopTexter) Send(context.Context, string, string) error { return nil }
func (noopTexter) Enabled() bool                               { return false }
