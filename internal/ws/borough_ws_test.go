package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"installations_api/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/api/arrondissements/:id/ws", hub.BoroughWebSocketHandler)
	ts := httptest.NewServer(r)

	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return hub, ts
}

func dial(t *testing.T, ts *httptest.Server, boroughID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/arrondissements/" + boroughID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversToBoroughClients(t *testing.T) {
	hub, ts := setupHubServer(t)

	verdun := dial(t, ts, "7")
	anjou := dial(t, ts, "8")
	require.Eventually(t, func() bool { return hub.Clients("7") == 1 && hub.Clients("8") == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), notify.NewEvent(notify.BoroughUpdated, 7, map[string]string{"nom": "Verdun"})))

	verdun.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := verdun.ReadMessage()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, notify.BoroughUpdated, got["event_type"])
	assert.Equal(t, float64(7), got["borough_id"])

	anjou.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = anjou.ReadMessage()
	assert.Error(t, err, "other boroughs receive nothing")
}

func TestHubCanonicalizesBoroughID(t *testing.T) {
	hub, ts := setupHubServer(t)

	conn := dial(t, ts, "07")
	require.Eventually(t, func() bool { return hub.Clients("7") == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, hub.Clients("07"))

	require.NoError(t, hub.Publish(context.Background(), notify.NewEvent(notify.BoroughUpdated, 7, nil)))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"borough_id":7`)
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, ts := setupHubServer(t)

	conn := dial(t, ts, "3")
	require.Eventually(t, func() bool { return hub.Clients("3") == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients("3") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBoroughWebSocketHandlerRejectsBadID(t *testing.T) {
	_, ts := setupHubServer(t)

	res, err := http.Get(ts.URL + "/api/arrondissements/abc/ws")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
