// Package webhook posts publish events to the workflow-automation
// endpoint that fans them out to the connected social accounts.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// AdPost is the payload delivered when a social ad is published.
type AdPost struct {
	UserID    string   `json:"userId"`
	BrandID   string   `json:"brandId"`
	Caption   string   `json:"caption"`
	MediaType string   `json:"mediaType"`
	MediaURLs []string `json:"mediaUrls"`
	Timestamp string   `json:"timestamp"`
	Source    string   `json:"source"`
}

// Event is a best-effort analytics ping.
type Event struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Surface   string `json:"surface"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// Client posts JSON payloads to the workflow webhook. The publish and
// analytics endpoints carry different failure policies: publishing to
// an unconfigured endpoint is a hard error, analytics pings are a
// silent no-op.
type Client struct {
	publishURL   string
	analyticsURL string
	client       *http.Client
	logger       *zap.Logger
}

func New(publishURL, analyticsURL string, client *http.Client, logger *zap.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		publishURL:   publishURL,
		analyticsURL: analyticsURL,
		client:       client,
		logger:       logger,
	}
}

// PublishAd delivers an ad-publish payload. A single attempt is made
// with no retry; the caller decides whether failure is fatal.
func (c *Client) PublishAd(ctx context.Context, post AdPost) error {
	if c.publishURL == "" {
		return errors.New("webhook publish url not configured; set webhook_url in config")
	}
	if post.Timestamp == "" {
		post.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if post.Source == "" {
		post.Source = "foundrly"
	}
	return c.postJSON(ctx, c.publishURL, post)
}

// Ping records an analytics event. Unconfigured endpoints and delivery
// failures are both swallowed; the ping never blocks a publish flow.
func (c *Client) Ping(ctx context.Context, ev Event) {
	if c.analyticsURL == "" {
		return
	}
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if ev.Source == "" {
		ev.Source = "foundrly"
	}
	if err := c.postJSON(ctx, c.analyticsURL, ev); err != nil {
		c.logger.Debug("analytics ping failed", zap.String("event", ev.Name), zap.Error(err))
	}
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
