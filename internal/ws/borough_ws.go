package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"installations_api/internal/logging"
	"installations_api/internal/metrics"
	"installations_api/internal/notify"
	"installations_api/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Hub keeps websocket clients grouped by borough id.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan BroadcastMessage
	done       chan struct{}
	mu         sync.RWMutex
}

// BroadcastMessage is a payload for every client of one borough.
type BroadcastMessage struct {
	BoroughID string
	Message   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan BroadcastMessage, 64),
		done:       make(chan struct{}),
	}
}

// Run serves the hub channels until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.BoroughID] == nil {
				h.clients[client.BoroughID] = make(map[*Client]bool)
			}
			h.clients[client.BoroughID][client] = true
			metrics.WebSocketConnections.Inc()
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients[message.BoroughID] {
				select {
				case client.Send <- message.Message:
				default:
					// Slow client: drop it rather than block the hub.
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.BoroughID]
	if !ok {
		return
	}
	if _, ok := clients[client]; ok {
		delete(clients, client)
		close(client.Send)
		metrics.WebSocketConnections.Dec()
		if len(clients) == 0 {
			delete(h.clients, client.BoroughID)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.remove(client)
		}
	}
}

// Clients returns the number of connected clients for a borough.
func (h *Hub) Clients(boroughID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[boroughID])
}

// Publish implements notify.Publisher.
func (h *Hub) Publish(ctx context.Context, e notify.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- BroadcastMessage{BoroughID: strconv.FormatUint(uint64(e.BoroughID), 10), Message: payload}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return nil
	}
}

// Client is one websocket connection.
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	BoroughID string
}

// readPump only watches for disconnects; clients have nothing to say.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}
		logging.Debug().Str("borough_id", c.BoroughID).Bytes("message", message).Msg("ignored client message")
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// BoroughWebSocketHandler upgrades the connection and subscribes it to the
// events of one borough.
// @Summary		Borough event feed
// @Description	WebSocket stream of borough_updated and subscriber_added events for one borough
// @Tags			arrondissements
// @Param			id	path	int	true	"Borough ID"
// @Failure		400	{object}	response.ErrorResponse	"Invalid borough id (INVALID_BOROUGH_ID)"
// @Router			/api/arrondissements/{id}/ws [get]
func (h *Hub) BoroughWebSocketHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BOROUGH_ID",
			Message: "Invalid borough id",
		})
		return
	}
	// Publish keys the hub by the canonical decimal form.
	boroughID := strconv.FormatUint(id, 10)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Ctx(c.Request.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	client := &Client{
		Hub:       h,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		BoroughID: boroughID,
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
