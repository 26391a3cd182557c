package dev

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// waitForClient blocks until the server has registered a connection.
func waitForClient(t *testing.T, server *ReloadServer) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if server.ClientCount() > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("client never registered")
}

func TestReloadBroadcast(t *testing.T) {
	server := NewReloadServer()
	ts := httptest.NewServer(server)
	defer ts.Close()
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForClient(t, server)

	server.NotifyReload()

	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"type":"reload"`) {
		t.Errorf("message = %s, want reload type", data)
	}
}

func TestNotifyCSSCarriesFile(t *testing.T) {
	server := NewReloadServer()
	ts := httptest.NewServer(server)
	defer ts.Close()
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForClient(t, server)

	server.NotifyCSS("auth.css")

	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	msg := string(data)
	if !strings.Contains(msg, `"type":"css"`) || !strings.Contains(msg, `"file":"auth.css"`) {
		t.Errorf("message = %s, want css message with file", msg)
	}
}

func TestClientCount(t *testing.T) {
	server := NewReloadServer()
	if server.ClientCount() != 0 {
		t.Errorf("ClientCount = %d, want 0", server.ClientCount())
	}
}
