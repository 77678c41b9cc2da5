// Package spectate streams game snapshots to read-only watchers over
// websocket. Watchers never send input.
package spectate

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pingpong/internal/game"
)

// Um espectador lento não pode travar o hub por mais que isso.
const writeWait = time.Second

// Eventos que o loop do hub aceita.
type eventType int

const (
	eventJoin eventType = iota
	eventLeave
	eventPublish
)

type hubEvent struct {
	typ    eventType
	client *websocket.Conn
	snap   game.Snapshot
}

type Hub struct {
	log      *slog.Logger
	events   chan hubEvent
	done     chan struct{}
	clients  atomic.Int64
	upgrader websocket.Upgrader
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		log:    log,
		events: make(chan hubEvent, 100),
		done:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Clients returns the number of connected watchers.
func (h *Hub) Clients() int {
	return int(h.clients.Load())
}

// Publish queues a snapshot for broadcast. If the queue is full the frame is
// dropped so the game loop never waits on the network.
func (h *Hub) Publish(snap game.Snapshot) bool {
	select {
	case h.events <- hubEvent{typ: eventPublish, snap: snap}:
		return true
	default:
		return false
	}
}

// Run owns the watcher set until ctx is done. Every watcher is closed on exit.
// Run must be called once.
func (h *Hub) Run(ctx context.Context) error {
	clients := make(map[*websocket.Conn]struct{})
	defer func() {
		close(h.done)
		for c := range clients {
			c.Close()
		}
		h.drain()
		h.clients.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt := <-h.events:
			switch evt.typ {
			case eventJoin:
				clients[evt.client] = struct{}{}
				h.clients.Store(int64(len(clients)))
				h.log.Info("spectator joined", "addr", evt.client.RemoteAddr().String(), "total", len(clients))

			case eventLeave:
				if _, ok := clients[evt.client]; ok {
					delete(clients, evt.client)
					evt.client.Close()
					h.clients.Store(int64(len(clients)))
					h.log.Info("spectator left", "addr", evt.client.RemoteAddr().String(), "total", len(clients))
				}

			case eventPublish:
				if len(clients) == 0 {
					continue
				}
				msg, err := Encode(evt.snap)
				if err != nil {
					h.log.Error("encode snapshot", "error", err)
					continue
				}
				for c := range clients {
					c.SetWriteDeadline(time.Now().Add(writeWait))
					if err := c.WriteMessage(websocket.BinaryMessage, msg); err != nil {
						delete(clients, c)
						c.Close()
						h.clients.Store(int64(len(clients)))
						h.log.Info("spectator dropped", "addr", c.RemoteAddr().String(), "error", err)
					}
				}
			}
		}
	}
}

// ServeHTTP upgrades the request and keeps the watcher registered until its
// connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("error to upgrade to websocket", "error", err)
		return
	}

	defer ws.Close()

	if !h.send(hubEvent{typ: eventJoin, client: ws}) {
		return
	}

	// Um join aceito depois do drain nunca seria fechado pelo hub.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-h.done:
			ws.Close()
		case <-stop:
		}
	}()

	// Espectadores não mandam nada; a leitura só detecta a desconexão.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	h.send(hubEvent{typ: eventLeave, client: ws})
}

// drain closes watchers whose join was queued but never processed.
func (h *Hub) drain() {
	for {
		select {
		case evt := <-h.events:
			if evt.typ == eventJoin {
				evt.client.Close()
			}
		default:
			return
		}
	}
}

// send blocks until the hub accepts the event or has stopped.
func (h *Hub) send(evt hubEvent) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.events <- evt:
		return true
	case <-h.done:
		return false
	}
}

func Encode(snap game.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

func Decode(data []byte) (game.Snapshot, error) {
	var snap game.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
