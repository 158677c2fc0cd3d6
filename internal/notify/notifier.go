package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 5 * time.Second

// Notifier posts plain-text messages to a configured channel endpoint.
// Delivery is best-effort: Send returns an error that callers log and
// discard, never letting it affect the relay outcome.
type Notifier struct {
	url        string
	httpClient *http.Client
}

func New(url string) *Notifier {
	return &Notifier{
		url:        url,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type message struct {
	Text string `json:"text"`
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(message{Text: text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify endpoint returned %s", resp.Status)
	}
	return nil
}
