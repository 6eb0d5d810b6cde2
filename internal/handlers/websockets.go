package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsResult is the payload of a "result" envelope: the resolved
// parameters plus the full simulation output.
type wsResult struct {
	Parameters   models.SimulationParameters `json:"parameters"`
	Applications []models.ApplicationRow     `json:"applications"`
	Degradation  []models.DegradationRow     `json:"degradation"`
	Summary      models.SummaryMetrics       `json:"summary"`
}

// wsInbound carries one client message from the reader goroutine to the
// writer loop: either a parsed parameter request or its parse error.
type wsInbound struct {
	req runRequest
	err error
}

// Upgrader for HTTP -> WebSocket.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// wsConnect serves the live recompute channel. The server pushes the
// default scenario on connect; every client message with parameter
// overrides triggers a fresh run pushed back as a "result" envelope.
// Invalid parameters come back as "error" envelopes without closing
// the connection.
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine parses parameter requests and detects disconnects.
	// stop lets the reader bail out once the writer loop is gone.
	inbound := make(chan wsInbound)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go h.readParameterRequests(conn, inbound, done, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	// Push the default scenario immediately so clients can render
	// without asking first.
	if err := h.sendResult(conn, runRequest{}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case in := <-inbound:
			if in.err != nil {
				if err := writeEnvelope(conn, wsEnvelope{Type: "error", Error: errInvalidBodyPref + in.err.Error()}); err != nil {
					return
				}
				continue
			}
			if err := h.sendResult(conn, in.req); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// Helper: readParameterRequests drains incoming messages, forwarding
// parsed requests until the peer or the writer loop goes away.
func (h *Handler) readParameterRequests(conn *websocket.Conn, inbound chan<- wsInbound, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		var msg wsInbound
		if err := json.Unmarshal(raw, &msg.req); err != nil {
			msg = wsInbound{err: err}
		}
		select {
		case inbound <- msg:
		case <-stop:
			return
		}
	}
}

// Helper: sendResult resolves the request against the defaults, runs the
// simulation and writes the outcome with a write deadline.
func (h *Handler) sendResult(conn *websocket.Conn, req runRequest) error {
	params := req.parameters(h.services.Simulation.Defaults())
	res, err := h.services.Simulation.Run(params)
	if err != nil {
		if errors.Is(err, service.ErrInvalidParameter) {
			return writeEnvelope(conn, wsEnvelope{Type: "error", Error: err.Error()})
		}
		if h.log != nil {
			h.log.Errorw("ws_run_failed", "err", err)
		}
		return writeEnvelope(conn, wsEnvelope{Type: "error", Error: errRunSimulation})
	}
	return writeEnvelope(conn, wsEnvelope{Type: "result", Data: wsResult{
		Parameters:   params,
		Applications: res.Applications,
		Degradation:  res.Degradation,
		Summary:      res.Summary,
	}})
}

func writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
