package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundrly/foundrly/wizard"
)

func shortTimings() wizard.Timings {
	return wizard.Timings{
		Generate:       5 * time.Millisecond,
		Refine:         5 * time.Millisecond,
		Connect:        5 * time.Millisecond,
		ConnectAdvance: 5 * time.Millisecond,
		PublishFloor:   10 * time.Millisecond,
		SuccessDismiss: 10 * time.Millisecond,
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(Deps{Timings: shortTimings()}).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeSnapshot(t *testing.T, resp *http.Response) wizard.Snapshot {
	t.Helper()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap wizard.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

func waitForPhase(t *testing.T, client *http.Client, url string, phase wizard.Phase) wizard.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		require.NoError(t, err)
		snap := decodeSnapshot(t, resp)
		if snap.Phase == phase {
			return snap
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for phase %s", phase)
	return wizard.Snapshot{}
}

func TestWizardLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	snap := decodeSnapshot(t, postJSON(t, client, srv.URL+"/api/wizards", map[string]string{"surface": "blog"}))
	require.NotEmpty(t, snap.ID)
	assert.Equal(t, wizard.PhaseInput, snap.Phase)
	assert.Len(t, snap.Slots, 3)
	require.NotEmpty(t, snap.Catalog)

	base := srv.URL + "/api/wizards/" + snap.ID

	// Missing website: the gate holds and the API returns the unchanged
	// snapshot rather than an error.
	snap = decodeSnapshot(t, postJSON(t, client, base+"/input", map[string]string{"name": "Acme"}))
	assert.Equal(t, wizard.PhaseInput, snap.Phase)

	snap = decodeSnapshot(t, postJSON(t, client, base+"/input", map[string]string{
		"name": "Acme", "website": "https://acme.com", "keywords": "growth",
	}))
	assert.Equal(t, wizard.PhaseTypeSelect, snap.Phase)

	snap = decodeSnapshot(t, postJSON(t, client, base+"/select", map[string]string{"type_id": "seo-longform"}))
	assert.Equal(t, wizard.PhaseGenerating, snap.Phase)

	snap = waitForPhase(t, client, base, wizard.PhaseReviewing)
	require.NotNil(t, snap.Content)

	// Rendered preview.
	resp, err := client.Get(base + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	// Publish branch through the connection gate.
	decodeSnapshot(t, postJSON(t, client, base+"/preview", nil))
	snap = decodeSnapshot(t, postJSON(t, client, base+"/publish", nil))
	assert.Equal(t, wizard.PhaseConnecting, snap.Phase)

	decodeSnapshot(t, postJSON(t, client, base+"/connect", map[string]string{"credential": "cms-token"}))
	waitForPhase(t, client, base, wizard.PhaseConfirmingPublish)

	decodeSnapshot(t, postJSON(t, client, base+"/confirm", nil))
	waitForPhase(t, client, base, wizard.PhaseSuccess)
	waitForPhase(t, client, base, wizard.PhaseInput)

	// Close.
	req, err := http.NewRequest(http.MethodDelete, base, nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = client.Get(base)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEditorFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	snap := decodeSnapshot(t, postJSON(t, client, srv.URL+"/api/wizards", map[string]string{"surface": "ad"}))
	base := srv.URL + "/api/wizards/" + snap.ID

	decodeSnapshot(t, postJSON(t, client, base+"/input", map[string]string{"name": "Acme", "website": "https://acme.com"}))
	decodeSnapshot(t, postJSON(t, client, base+"/select", map[string]string{"type_id": "product-promo"}))
	waitForPhase(t, client, base, wizard.PhaseReviewing)

	snap = decodeSnapshot(t, postJSON(t, client, base+"/editor", nil))
	assert.Equal(t, wizard.PhaseEditing, snap.Phase)

	snap = decodeSnapshot(t, postJSON(t, client, base+"/field", map[string]string{"path": "caption", "value": "edited"}))
	assert.Equal(t, wizard.PhaseEditing, snap.Phase)

	// Unknown field path is a client error.
	resp := postJSON(t, client, base+"/field", map[string]string{"path": "nope", "value": "x"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	snap = decodeSnapshot(t, postJSON(t, client, base+"/refine", map[string]string{"instruction": "add more emojis"}))
	require.Len(t, snap.Chat, 1)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(base)
		require.NoError(t, err)
		snap = decodeSnapshot(t, resp)
		if len(snap.Chat) == 2 {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}
	require.Len(t, snap.Chat, 2)

	decodeSnapshot(t, postJSON(t, client, base+"/undo", nil))
}

func TestScheduleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	snap := decodeSnapshot(t, postJSON(t, client, srv.URL+"/api/wizards", map[string]string{"surface": "newsletter"}))
	base := srv.URL + "/api/wizards/" + snap.ID

	decodeSnapshot(t, postJSON(t, client, base+"/input", map[string]string{"name": "Acme", "website": "https://acme.com"}))
	decodeSnapshot(t, postJSON(t, client, base+"/select", map[string]string{"type_id": "weekly-digest"}))
	waitForPhase(t, client, base, wizard.PhaseReviewing)
	decodeSnapshot(t, postJSON(t, client, base+"/preview", nil))

	snap = decodeSnapshot(t, postJSON(t, client, base+"/schedule", map[string]string{}))
	assert.Equal(t, wizard.PhaseScheduling, snap.Phase)

	resp := postJSON(t, client, base+"/schedule", map[string]string{"date": "bad", "time": "09:00"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	snap = decodeSnapshot(t, postJSON(t, client, base+"/schedule", map[string]string{"date": "2024-06-05", "time": "09:00"}))
	require.NotNil(t, snap.Schedule)
	waitForPhase(t, client, base, wizard.PhaseSuccess)
}

func TestUnknownWizardIs404(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().Get(srv.URL + "/api/wizards/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateRejectsUnknownSurface(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.Client(), srv.URL+"/api/wizards", map[string]string{"surface": "tiktok"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSlotsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().Get(srv.URL + "/api/slots?surface=ad")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var slots []wizard.RecommendedSlot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slots))
	require.Len(t, slots, 3)
	assert.Equal(t, 1, slots[0].Rank)
}

func TestWelcomeFallsBackWithoutAssistant(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().Get(srv.URL + "/api/welcome")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Message, "Foundrly")
}

func TestContentItemsWithoutBackendIs503(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().Get(srv.URL + "/api/content-items")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestEventsWebsocketStreamsPhases(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	snap := decodeSnapshot(t, postJSON(t, client, srv.URL+"/api/wizards", map[string]string{"surface": "blog"}))
	base := srv.URL + "/api/wizards/" + snap.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, fmt.Sprintf("%s/events", base), &websocket.DialOptions{
		HTTPClient: client,
	})
	require.NoError(t, err)
	defer conn.CloseNow()

	decodeSnapshot(t, postJSON(t, client, base+"/input", map[string]string{"name": "Acme", "website": "https://acme.com"}))

	var ev wizard.Event
	require.NoError(t, wsjson.Read(ctx, conn, &ev))
	assert.Equal(t, wizard.PhaseTypeSelect, ev.Phase)
	assert.Equal(t, 1, ev.Step)
}
