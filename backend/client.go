// Package backend is a thin client for the hosted auth/data service
// the dashboard runs on. The wizard core only touches it through the
// ContentItem save path; everything else belongs to the dashboard.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Session is the authenticated dashboard user.
type Session struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// ContentItem is a content record keyed by user and brand.
type ContentItem struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	BrandID      string          `json:"brand_id"`
	Surface      string          `json:"surface"`
	TypeID       string          `json:"type_id"`
	Title        string          `json:"title"`
	Body         json.RawMessage `json:"body"`
	Status       string          `json:"status"`
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Client talks JSON over HTTP to the backend service.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func New(baseURL, apiKey string, client *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("backend base_url not configured")
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}, nil
}

// GetSession returns the current user session.
func (c *Client) GetSession(ctx context.Context) (Session, error) {
	var sess Session
	if err := c.doJSON(ctx, http.MethodGet, "/auth/session", nil, &sess); err != nil {
		return Session{}, err
	}
	if sess.UserID == "" {
		return Session{}, errors.New("backend returned empty session")
	}
	return sess, nil
}

// SaveContentItem creates or replaces a content record.
func (c *Client) SaveContentItem(ctx context.Context, item ContentItem) error {
	return c.doJSON(ctx, http.MethodPost, "/content-items", item, nil)
}

// ListContentItems returns the user's content records, newest first.
func (c *Client) ListContentItems(ctx context.Context, userID string) ([]ContentItem, error) {
	var items []ContentItem
	path := "/content-items?user_id=" + url.QueryEscape(userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend %s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
