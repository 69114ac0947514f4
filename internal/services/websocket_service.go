package services

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WebSocketMessage is a message pushed to connected admin dashboards
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// wsClient is one connected dashboard
type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan WebSocketMessage
	hub  *wsHub
}

// wsHub maintains the set of connected clients and fans broadcasts out to
// them
type wsHub struct {
	clients    map[*wsClient]bool
	broadcast  chan WebSocketMessage
	register   chan *wsClient
	unregister chan *wsClient
	mutex      sync.RWMutex
}

// WebSocketService pushes dashboard updates (statistics after every content
// mutation, the countdown transition when the offer expires) to connected
// admin clients
type WebSocketService struct {
	hub      *wsHub
	upgrader websocket.Upgrader
	auth     *AuthService
}

// NewWebSocketService creates a WebSocket service gated by the admin auth
// service
func NewWebSocketService(auth *AuthService) *WebSocketService {
	hub := &wsHub{
		clients:    make(map[*wsClient]bool),
		broadcast:  make(chan WebSocketMessage, 16),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
	}
	service := &WebSocketService{
		hub:  hub,
		auth: auth,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// origin is enforced by the CORS layer in front
				return true
			},
		},
	}
	go hub.run()
	return service
}

func (h *wsHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("ws: client %s connected (%d total)", client.id, h.count())
		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			log.Printf("ws: client %s disconnected (%d total)", client.id, h.count())
		case message := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow client, drop the update; the next one supersedes it
				}
			}
			h.mutex.RUnlock()
		}
	}
}

func (h *wsHub) count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades an admin connection. The session token arrives as
// a query parameter since browsers cannot set headers on WebSocket dials.
func (s *WebSocketService) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token required"})
		return
	}
	if _, err := s.auth.ValidateToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	client := &wsClient{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan WebSocketMessage, 16),
		hub:  s.hub,
	}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// Broadcast pushes a message to every connected client
func (s *WebSocketService) Broadcast(messageType string, data interface{}) {
	s.hub.broadcast <- WebSocketMessage{Type: messageType, Data: data}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(45 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(1024)
	for {
		// dashboards only listen; drain anything they send
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
