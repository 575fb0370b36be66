package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const pushoverAPIURL = "https://api.pushover.net/1/messages.json"

// PushoverNotifier delivers reminders through the Pushover message API.
type PushoverNotifier struct {
	token  string
	user   string
	client *http.Client
}

func NewPushoverNotifier(token, user string) *PushoverNotifier {
	return &PushoverNotifier{
		token:  token,
		user:   user,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *PushoverNotifier) Send(ctx context.Context, n Notification) error {
	params := url.Values{}
	params.Set("token", p.token)
	params.Set("user", p.user)
	params.Set("title", n.Title)
	params.Set("message", n.Body)
	if n.Reference != "" {
		params.Set("url_title", n.Reference)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pushoverAPIURL,
		strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build pushover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("pushover request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pushover api error: status %s, body %s", resp.Status, string(body))
	}

	return nil
}
