package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	UserID  uint
	IsAdmin bool
	Conn    *websocket.Conn
	mu      sync.Mutex
}

func (c *Client) send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub mantém as conexões websocket de clientes e administradores e faz o
// fan-out das notificações de mudança de status.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint][]*Client
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[uint][]*Client),
		log:     log,
	}
}

// Register faz o upgrade da conexão e registra o cliente no hub.
// A goroutine de leitura serve apenas para detectar desconexão.
func (h *Hub) Register(w http.ResponseWriter, r *http.Request, userID uint, isAdmin bool) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{UserID: userID, IsAdmin: isAdmin, Conn: conn}

	h.mu.Lock()
	h.clients[userID] = append(h.clients[userID], client)
	h.mu.Unlock()

	go h.readLoop(client)
	return nil
}

func (h *Hub) readLoop(c *Client) {
	defer func() {
		h.unregister(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Debug("websocket closed", zap.Uint("user_id", c.UserID), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.clients[c.UserID]
	for i, conn := range conns {
		if conn == c {
			h.clients[c.UserID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.clients[c.UserID]) == 0 {
		delete(h.clients, c.UserID)
	}
}

// Publish entrega o evento ao dono do agendamento e a todos os admins
// conectados. Falhas de escrita apenas derrubam a conexão afetada.
func (h *Hub) Publish(ev AppointmentStatusChanged) {
	payload, err := json.Marshal(map[string]any{
		"type":           "appointment_status_changed",
		"appointment_id": ev.AppointmentID,
		"old_status":     ev.OldStatus,
		"new_status":     ev.NewStatus,
		"message":        ev.Message,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	var targets []*Client
	for _, conns := range h.clients {
		for _, c := range conns {
			if c.UserID == ev.UserID || c.IsAdmin {
				targets = append(targets, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(payload); err != nil {
			h.log.Debug("websocket write failed", zap.Uint("user_id", c.UserID), zap.Error(err))
			c.Conn.Close()
		}
	}
}
