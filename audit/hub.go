package audit

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans committed audit entries out to websocket subscribers. Slow subscribers are dropped
// rather than allowed to block a mutation.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

var hub *Hub
var hubOnce sync.Once

func GetHub() *Hub {
	hubOnce.Do(func() {
		hub = NewHub()
	})
	return hub
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) Broadcast(l logrus.FieldLogger, ms ...Model) {
	for _, m := range ms {
		rm, err := Transform(m)
		if err != nil {
			l.WithError(err).Errorf("Unable to transform audit entry [%d] for broadcast.", m.Id())
			continue
		}
		b, err := json.Marshal(rm)
		if err != nil {
			l.WithError(err).Errorf("Unable to marshal audit entry [%d] for broadcast.", m.Id())
			continue
		}

		h.mu.Lock()
		for c := range h.clients {
			select {
			case c.send <- b:
			default:
				delete(h.clients, c)
				close(c.send)
				l.Warnf("Dropped slow history subscriber.")
			}
		}
		h.mu.Unlock()
	}
}

func (h *Hub) Serve(l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			l.WithError(err).Errorf("Unable to upgrade history stream connection.")
			return
		}
		c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
		h.register(c)
		l.Debugf("History subscriber connected from [%s].", r.RemoteAddr)

		go h.writePump(l, c)
		h.readPump(c)
	}
}

func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(l logrus.FieldLogger, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case b, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				l.WithError(err).Debugf("History subscriber write failed.")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
