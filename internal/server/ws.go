package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"Vector2/internal/sim"
	"Vector2/vector"
)

type HandlerConfig struct {
	Logger *log.Logger
}

// Handler streams world state over a websocket and applies client commands.
type Handler struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func parseDelay(raw string) float64 {
	if raw == "" {
		return 0
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(d > 0) {
		return 0
	}
	return d
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	delay := parseDelay(r.URL.Query().Get("delay"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade: %v", err)
		return
	}
	defer conn.Close()

	replies := make(chan ackMsg, 16)
	done := make(chan struct{})
	go h.readLoop(conn, replies, done)

	if err := conn.WriteJSON(buildStateMsg(h.hub, delay)); err != nil {
		h.logger.Printf("send state error: %v", err)
		return
	}

	ticker := time.NewTicker(time.Duration(1000.0/sim.UpdateRateHz) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case reply := <-replies:
			if err := conn.WriteJSON(reply); err != nil {
				h.logger.Printf("send reply error: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteJSON(buildStateMsg(h.hub, delay)); err != nil {
				h.logger.Printf("send state error: %v", err)
				return
			}
		}
	}
}

// readLoop is the only reader on conn. Replies go back through the write
// loop since a websocket connection allows a single concurrent writer.
func (h *Handler) readLoop(conn *websocket.Conn, replies chan<- ackMsg, done chan<- struct{}) {
	defer close(done)
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("read error: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			h.logger.Printf("unsupported websocket message type %d", msgType)
			continue
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Printf("invalid JSON message: %v", err)
			continue
		}
		reply, ok := h.apply(msg)
		if !ok {
			h.logger.Printf("unknown message type: %s", msg.Type)
			continue
		}
		select {
		case replies <- reply:
		default:
			h.logger.Printf("dropping %s reply, client too slow", reply.Type)
		}
	}
}

func (h *Handler) apply(msg inboundMessage) (ackMsg, bool) {
	switch msg.Type {
	case "spawn":
		id := h.hub.Spawn(vector.New(msg.X, msg.Y), vector.New(msg.VX, msg.VY))
		if msg.Speed > 0 && len(msg.Points) > 0 {
			h.hub.SetRoute(id, msg.Speed, pointsToVectors(msg.Points))
		}
		return ackMsg{Type: "spawned", ID: int(id), OK: true}, true
	case "route":
		if !h.hub.SetRoute(sim.BodyID(msg.ID), msg.Speed, pointsToVectors(msg.Points)) {
			return ackMsg{Type: "routed", ID: msg.ID, Error: "unknown body"}, true
		}
		return ackMsg{Type: "routed", ID: msg.ID, OK: true}, true
	case "nearest":
		id, d, found := h.hub.Nearest(vector.New(msg.X, msg.Y))
		if !found {
			return ackMsg{Type: "nearest", Error: "no bodies"}, true
		}
		return ackMsg{Type: "nearest", ID: int(id), OK: true, Distance: d}, true
	}
	return ackMsg{}, false
}

func pointsToVectors(points []pointDTO) []*vector.Vector2 {
	out := make([]*vector.Vector2, 0, len(points))
	for _, p := range points {
		out = append(out, p.toVector())
	}
	return out
}
