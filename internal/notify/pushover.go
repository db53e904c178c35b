package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const pushoverEndpoint = "https://api.pushover.net/1/messages.json"

// PushoverSender delivers notifications through the Pushover API.
type PushoverSender struct {
	userKey  string
	apiToken string
	client   *http.Client
}

// NewPushoverSender creates a Pushover sender, or nil when keys are not
// configured.
func NewPushoverSender(userKey, apiToken string) *PushoverSender {
	if userKey == "" || apiToken == "" {
		return nil
	}
	return &PushoverSender{userKey: userKey, apiToken: apiToken, client: http.DefaultClient}
}

// Name implements Sender.
func (p *PushoverSender) Name() string { return "pushover" }

// Send implements Sender.
func (p *PushoverSender) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(map[string]interface{}{
		"token":    p.apiToken,
		"user":     p.userKey,
		"title":    msg.Subject,
		"message":  msg.Text,
		"priority": 0,
		"sound":    "pushover",
	})
	if err != nil {
		return fmt.Errorf("failed to encode pushover payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pushoverEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("pushover request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Status int      `json:"status"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode pushover response: %w", err)
	}
	if resp.StatusCode >= 400 || result.Status != 1 {
		return fmt.Errorf("pushover API error: %v", result.Errors)
	}
	return nil
}
