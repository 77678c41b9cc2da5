package spectate

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pingpong/internal/game"
)

func startHub(t *testing.T) (*Hub, string, context.CancelFunc, <-chan error) {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- hub.Run(ctx) }()

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http"), cancel, errc
}

func waitClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != want {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want %d", hub.Clients(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEncodeDecodeSnapshot(t *testing.T) {
	snap := game.New().Snapshot()
	snap.Winner = game.LeftWins

	data, err := Encode(snap)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != snap {
		t.Fatalf("decoded %+v, want %+v", got, snap)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not gob")); err == nil {
		t.Fatalf("expected error decoding garbage")
	}
}

func TestHubBroadcastsToWatchers(t *testing.T) {
	hub, url, _, _ := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitClients(t, hub, 1)

	s := game.New()
	snap, _ := game.Step(s, game.Input{})
	if !hub.Publish(snap) {
		t.Fatalf("publish dropped on an empty queue")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if typ != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", typ)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != snap {
		t.Fatalf("got %+v, want %+v", got, snap)
	}
}

func TestHubForgetsClosedWatcher(t *testing.T) {
	hub, url, _, _ := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitClients(t, hub, 1)

	conn.Close()
	waitClients(t, hub, 0)
}

func TestHubStopClosesWatchers(t *testing.T) {
	hub, url, cancel, errc := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitClients(t, hub, 1)

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected read error after hub stopped")
	}
	if hub.Clients() != 0 {
		t.Fatalf("clients = %d after stop, want 0", hub.Clients())
	}
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	hub := NewHub(nil)
	snap := game.New().Snapshot()

	accepted := 0
	for i := 0; i < 150; i++ {
		if hub.Publish(snap) {
			accepted++
		}
	}
	if accepted != cap(hub.events) {
		t.Fatalf("accepted = %d, want %d", accepted, cap(hub.events))
	}
	if hub.Publish(snap) {
		t.Fatalf("publish on a full queue was accepted")
	}
}

func TestHubDropsBrokenWatcher(t *testing.T) {
	hub, url, _, _ := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitClients(t, hub, 1)

	conn.UnderlyingConn().Close()

	snap := game.New().Snapshot()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("broken watcher still registered: clients = %d", hub.Clients())
		}
		hub.Publish(snap)
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLateWatcherClosedAfterStop(t *testing.T) {
	_, url, cancel, errc := startHub(t)

	cancel()
	select {
	case <-errc:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if err == nil {
		t.Fatalf("expected the hub to close a watcher that joined after stop")
	}
	if ne, ok := err.(interface{ Timeout() bool }); ok && ne.Timeout() {
		t.Fatalf("watcher left open after stop: %v", err)
	}
}
