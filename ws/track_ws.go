package ws

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/services"
	"github.com/vinaytz/theSkFoodBackend/utils"
)

// TrackHub pushes order-status transitions to subscribed clients so the
// orders page does not have to poll.
type TrackHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of conns
	broadcast  chan statusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *services.OrderService
	log        *zap.Logger
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

type statusEvent struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewTrackHub(orders *services.OrderService, log *zap.Logger) *TrackHub {
	return &TrackHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan statusEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
		log:        log,
	}
}

// OrderStatusChanged implements services.StatusNotifier.
func (h *TrackHub) OrderStatusChanged(orderID uint, status entity.OrderStatus) {
	h.broadcast <- statusEvent{OrderID: orderID, Status: status}
}

func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Serve upgrades GET /ws/orders/:id. Customers can only watch their own
// orders; admins can watch any.
func (h *TrackHub) Serve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	orderID := uint(id)

	if utils.CurrentRole(c) != "admin" {
		if _, err := h.orders.MyOrderWithID(utils.CurrentUserID(c), orderID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	// Drain the connection; a read error means the client went away.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
