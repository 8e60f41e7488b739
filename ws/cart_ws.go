package ws

import (
	"context"
	"net/http"
	"sync"

	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// CartHub pushes cart snapshots to every websocket a session has open.
type CartHub struct {
	clients    map[string]map[*websocket.Conn]bool // sessionID -> set of connections
	broadcast  chan CartMessage
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	carts      *services.CartService
	log        *zap.Logger
}

// Subscription is one connection listening to one session's cart.
type Subscription struct {
	Conn      *websocket.Conn
	SessionID string
}

type CartMessage struct {
	SessionID string
	View      services.CartView
}

func NewCartHub(log *zap.Logger) *CartHub {
	return &CartHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan CartMessage, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Attach sets the cart service used to send the first snapshot on connect.
func (h *CartHub) Attach(carts *services.CartService) { h.carts = carts }

// PublishCart queues view for the session's subscribers. A full queue drops
// the update; the next change carries the complete cart anyway.
func (h *CartHub) PublishCart(sessionID string, view services.CartView) {
	select {
	case h.broadcast <- CartMessage{SessionID: sessionID, View: view}:
	default:
		h.log.Warn("cart update dropped", zap.String("session_id", sessionID))
	}
}

// Run serves register/unregister/broadcast until ctx is done.
func (h *CartHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			h.removeClient(sub.SessionID, sub.Conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.SessionID] {
				if err := conn.WriteJSON(msg.View); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					h.removeClient(msg.SessionID, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Subscribers reports how many connections a session has open.
func (h *CartHub) Subscribers(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

// removeClient closes conn and drops the session entry once it has no
// connections left. Callers hold h.mu.
func (h *CartHub) removeClient(sessionID string, conn *websocket.Conn) {
	conns, ok := h.clients[sessionID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; !ok {
		return
	}
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.clients, sessionID)
	}
	conn.Close()
}

func (h *CartHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, id)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /ws/cart.
func (h *CartHub) HandleWebSocket(c *gin.Context) {
	sessionID := utils.CurrentSessionID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := Subscription{Conn: conn, SessionID: sessionID}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	if h.carts != nil {
		if view, err := h.carts.Get(sessionID); err == nil {
			h.PublishCart(sessionID, view)
		}
	}

	go h.listen(sub)
}

// listen drains client frames until the connection closes.
func (h *CartHub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
