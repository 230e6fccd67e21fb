// Package spectate serves a read-only WebSocket feed of a running board.
// Viewers receive JSON envelopes of board snapshots and events; nothing
// they send is applied to the game.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 64
)

// Envelope is the wire format of every feed message.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans published messages out to connected viewers.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	snapshot []byte // latest snapshot, replayed to new viewers
	logger   *log.Logger
}

// NewHub creates an empty hub. A nil logger discards logs.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Publish broadcasts v under the given type. It never blocks; a viewer
// whose buffer is full is disconnected.
func (h *Hub) Publish(kind string, v any) {
	msg, err := json.Marshal(Envelope{Type: kind, Data: v})
	if err != nil {
		h.logger.Warn("spectate: cannot encode message", "type", kind, "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if kind == "snapshot" {
		h.snapshot = msg
	}
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.dropLocked(c)
			h.logger.Debug("spectate: slow viewer dropped", "remote", c.remote)
		}
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and registers the viewer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("spectate: upgrade failed", "err", err)
		return
	}

	c := &client{ws: ws, send: make(chan []byte, sendBuffer), remote: r.RemoteAddr}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.snapshot != nil {
		c.send <- h.snapshot
	}
	h.mu.Unlock()

	h.logger.Info("spectate: viewer joined", "remote", c.remote, "viewers", h.Viewers())

	go c.writePump()
	c.readPump()

	h.mu.Lock()
	h.dropLocked(c)
	h.mu.Unlock()
	h.logger.Info("spectate: viewer left", "remote", c.remote, "viewers", h.Viewers())
}

func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// closeAll disconnects every viewer.
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.dropLocked(c)
	}
}

// Handler returns the HTTP routes of the feed.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe runs the feed on addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("spectate: listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	h.closeAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
