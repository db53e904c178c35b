package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailSender delivers notifications through the Resend email API.
type EmailSender struct {
	apiKey string
	from   string
	to     string
	client *http.Client
}

// NewEmailSender creates a Resend sender, or nil when no API key or
// recipient is configured.
func NewEmailSender(apiKey, from, to string) *EmailSender {
	if apiKey == "" || to == "" {
		return nil
	}
	return &EmailSender{apiKey: apiKey, from: from, to: to, client: http.DefaultClient}
}

// Name implements Sender.
func (e *EmailSender) Name() string { return "email" }

// Send implements Sender.
func (e *EmailSender) Send(ctx context.Context, msg Message) error {
	payload := map[string]interface{}{
		"from":    e.from,
		"to":      []string{e.to},
		"subject": msg.Subject,
		"html":    msg.HTML,
		"text":    msg.Text,
	}
	if msg.ReplyTo != "" {
		payload["reply_to"] = msg.ReplyTo
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return fmt.Errorf("resend API error: %s", apiErr.Message)
	}
	return nil
}
