package live

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

func newTestHub(t *testing.T, authorize func(*http.Request) bool) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(log.New(io.Discard), authorize)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env map[string]any
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("invalid json %s: %v", msg, err)
	}
	return env
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.Clients())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub, srv := newTestHub(t, nil)

	a := dial(t, wsURL(srv, ""))
	b := dial(t, wsURL(srv, ""))
	waitForClients(t, hub, 2)

	if err := hub.Broadcast("stats", map[string]int{"total": 3}); err != nil {
		t.Fatalf("broadcast: %v", err)
	}

	for _, conn := range []*websocket.Conn{a, b} {
		env := readEnvelope(t, conn)
		if env["event"] != "stats" {
			t.Errorf("expected event stats, got %v", env["event"])
		}
		data, _ := env["data"].(map[string]any)
		if data["total"] != float64(3) {
			t.Errorf("expected total 3, got %v", data["total"])
		}
	}
}

func TestHub_ReplaysLatestOnConnect(t *testing.T) {
	hub, srv := newTestHub(t, nil)

	_ = hub.Broadcast("stats", map[string]int{"total": 1})
	_ = hub.Broadcast("stats", map[string]int{"total": 2})

	conn := dial(t, wsURL(srv, ""))
	env := readEnvelope(t, conn)
	data, _ := env["data"].(map[string]any)
	if data["total"] != float64(2) {
		t.Errorf("expected latest snapshot total 2, got %v", data["total"])
	}
}

func TestHub_Unauthorized(t *testing.T) {
	_, srv := newTestHub(t, func(r *http.Request) bool {
		return r.URL.Query().Get("token") == "ok"
	})

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "?token=bad"), nil)
	if err == nil {
		t.Fatalf("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 response, got %v", resp)
	}

	dial(t, wsURL(srv, "?token=ok"))
}

func TestHub_DropsClosedClients(t *testing.T) {
	hub, srv := newTestHub(t, nil)

	conn := dial(t, wsURL(srv, ""))
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestHub_StalledClientDoesNotBlockOthers(t *testing.T) {
	hub, srv := newTestHub(t, nil)

	conn := dial(t, wsURL(srv, ""))
	waitForClients(t, hub, 1)

	// A peer that never drains its queue.
	stalled := &client{remote: "stalled", send: make(chan []byte)}
	hub.mu.Lock()
	hub.clients[stalled] = struct{}{}
	hub.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- hub.Broadcast("stats", map[string]int{"total": 7}) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("broadcast: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a stalled client")
	}

	env := readEnvelope(t, conn)
	data, _ := env["data"].(map[string]any)
	if data["total"] != float64(7) {
		t.Errorf("expected total 7, got %v", data["total"])
	}

	if hub.Clients() != 1 {
		t.Errorf("expected stalled client to be dropped, have %d clients", hub.Clients())
	}
	if _, open := <-stalled.send; open {
		t.Errorf("expected stalled client queue to be closed")
	}
}
