// Package spectate streams game frames to watchers over a websocket.
package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"term-snake/game"
)

const (
	writeWait   = 2 * time.Second
	clientQueue = 16
)

// Frame is what watchers receive.
type Frame struct {
	Session string        `json:"session"`
	Rows    []string      `json:"rows"`
	Board   game.Snapshot `json:"board"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub is a game.Renderer that keeps the latest frame and fans it out to
// connected watchers. Present never blocks on a slow watcher: its frame is
// dropped instead.
type Hub struct {
	session string

	mu      sync.Mutex
	latest  []byte
	clients map[chan []byte]struct{}
}

func NewHub(session string) *Hub {
	return &Hub{
		session: session,
		clients: make(map[chan []byte]struct{}),
	}
}

func (h *Hub) Present(s game.Snapshot) error {
	data, err := json.Marshal(Frame{Session: h.session, Rows: s.Rows(), Board: s})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for ch := range h.clients {
		select {
		case ch <- data:
		default:
		}
	}
	return nil
}

// Router serves GET /snapshot and GET /ws.
func (h *Hub) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/snapshot", h.handleSnapshot)
	r.Get("/ws", h.handleWS)
	return r
}

func (h *Hub) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	data := h.latest
	h.mu.Unlock()

	if data == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("spectate: ws upgrade:", err)
		return
	}
	defer conn.Close()

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	// Watchers never send; reading only notices the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case data := <-ch:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Println("spectate: write:", err)
				return
			}
		}
	}
}

// subscribe registers a watcher and queues the latest frame for it.
func (h *Hub) subscribe() chan []byte {
	ch := make(chan []byte, clientQueue)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ch] = struct{}{}
	if h.latest != nil {
		ch <- h.latest
	}
	return ch
}

func (h *Hub) unsubscribe(ch chan []byte) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

// Watchers returns the number of connected watchers.
func (h *Hub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
