package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

type webhookPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// WebhookGateway posts {phone, message} to an automation webhook that
// relays the text over WhatsApp.
type WebhookGateway struct {
	url    string
	client *http.Client
}

// NewWebhookGateway builds a gateway for url. A zero timeout keeps the
// http.Client default.
func NewWebhookGateway(url string, timeout time.Duration) *WebhookGateway {
	return &WebhookGateway{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (g *WebhookGateway) Send(ctx context.Context, phone, message string) error {
	to, err := destination(phone)
	if err != nil {
		return err
	}

	body, err := json.Marshal(webhookPayload{Phone: to, Message: message})
	if err != nil {
		return httperr.MessagingError{Reason: "encode_failed", Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return httperr.MessagingError{Reason: "request_failed", Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return httperr.MessagingError{Reason: "network_error", Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return httperr.MessagingError{Reason: "read_failed", Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httperr.MessagingError{
			Reason: "webhook_rejected",
			Detail: rejectionDetail(resp.StatusCode, raw),
		}
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return httperr.MessagingError{Reason: "malformed_response", Detail: strings.TrimSpace(string(raw))}
	}

	return nil
}

func rejectionDetail(status int, raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}

var _ Gateway = (*WebhookGateway)(nil)
