package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishAdUnconfiguredIsHardError(t *testing.T) {
	c := New("", "", nil, nil)
	err := c.PublishAd(context.Background(), AdPost{Caption: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestPublishAdDeliversPayload(t *testing.T) {
	var got AdPost
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := New(srv.URL, "", srv.Client(), nil)
	err := c.PublishAd(context.Background(), AdPost{
		UserID:    "u1",
		BrandID:   "b1",
		Caption:   "caption",
		MediaType: "image",
		MediaURLs: []string{"https://img.example/a.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "caption", got.Caption)
	assert.Equal(t, "foundrly", got.Source)
	assert.NotEmpty(t, got.Timestamp)
}

func TestPublishAdNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "", srv.Client(), nil)
	assert.Error(t, c.PublishAd(context.Background(), AdPost{Caption: "x"}))
}

func TestPingUnconfiguredIsSilentNoOp(t *testing.T) {
	c := New("", "", nil, nil)
	// Must neither panic nor error.
	c.Ping(context.Background(), Event{Name: "content_published"})
}

func TestPingSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New("", srv.URL, srv.Client(), nil)
	c.Ping(context.Background(), Event{Name: "content_published"})
}

func TestPingDelivers(t *testing.T) {
	var got Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := New("", srv.URL, srv.Client(), nil)
	c.Ping(context.Background(), Event{UserID: "u1", Name: "content_scheduled", Surface: "ad"})
	assert.Equal(t, "content_scheduled", got.Name)
	assert.Equal(t, "foundrly", got.Source)
}
