package messaging

import (
	"context"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

// TwilioGateway sends the same messages through Twilio's WhatsApp API.
type TwilioGateway struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioGateway(accountSID, authToken, from string) *TwilioGateway {
	return &TwilioGateway{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (g *TwilioGateway) Send(ctx context.Context, phone, message string) error {
	to, err := destination(phone)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return httperr.MessagingError{Reason: "cancelled", Detail: err.Error()}
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + to)
	params.SetFrom("whatsapp:" + g.from)
	params.SetBody(message)

	resp, err := g.client.Api.CreateMessage(params)
	if err != nil {
		return httperr.MessagingError{Reason: "twilio_rejected", Detail: err.Error()}
	}

	if resp.Sid != nil {
		log.Printf("message sent to %s, sid=%s", to, *resp.Sid)
	}
	return nil
}

var _ Gateway = (*TwilioGateway)(nil)
