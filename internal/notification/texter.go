package notification

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/foliohq/folio/internal/config"
)

// twilioTexter sends texts via Twilio, over the WhatsApp channel when the
// configuration asks for it.
type twilioTexter struct {
	client *twilio.RestClient
	cfg    config.SMS
}

func newTwilioTexter(cfg config.SMS) Texter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &twilioTexter{client: client, cfg: cfg}
}

func (t *twilioTexter) Send(_ context.Context, to, body string) error {
	from := t.cfg.From
	if t.cfg.WhatsApp {
		from = "whatsapp:" + from
		to = "whatsapp:" + to
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	return err
}

func (t *twilioTexter) Enabled() bool { return true }
