package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

type wsTestEnvelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

type wsTestResult struct {
	Parameters   models.SimulationParameters `json:"parameters"`
	Applications []models.ApplicationRow     `json:"applications"`
	Degradation  []models.DegradationRow     `json:"degradation"`
	Summary      models.SummaryMetrics       `json:"summary"`
}

// dialWS spins up a test server around /ws and opens a client
// connection against it.
func dialWS(t *testing.T, s *service.Service) (*websocket.Conn, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial error: %v", err)
	}
	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) wsTestEnvelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsTestEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read envelope: %v", err)
	}
	return env
}

func resultPayload(t *testing.T, env wsTestEnvelope) wsTestResult {
	t.Helper()
	if env.Type != "result" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var res wsTestResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	return res
}

func TestWebSocket_PushesDefaultScenarioOnConnect(t *testing.T) {
	conn, teardown := dialWS(t, service.NewService())
	defer teardown()

	res := resultPayload(t, readEnvelope(t, conn))
	if res.Parameters != models.DefaultParameters() {
		t.Fatalf("unexpected parameters: %+v", res.Parameters)
	}
	if len(res.Applications) != 11 || len(res.Degradation) != 13 {
		t.Fatalf("unexpected table sizes: %d applications, %d degradation",
			len(res.Applications), len(res.Degradation))
	}
	if res.Summary.DecayRateUsed != 0.05 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
}

func TestWebSocket_RecomputesOnParameterMessage(t *testing.T) {
	conn, teardown := dialWS(t, service.NewService())
	defer teardown()

	// Drain the initial default push first.
	_ = resultPayload(t, readEnvelope(t, conn))

	if err := conn.WriteJSON(map[string]float64{"decay_rate": 0.2}); err != nil {
		t.Fatalf("write params: %v", err)
	}
	res := resultPayload(t, readEnvelope(t, conn))
	if res.Parameters.DecayRate != 0.2 {
		t.Fatalf("decay rate not applied: %+v", res.Parameters)
	}
	if res.Parameters.MaxConcentration != 100 || res.Parameters.ConcentrationStep != 10 {
		t.Fatalf("omitted fields should keep defaults: %+v", res.Parameters)
	}
	if res.Summary.DecayRateUsed != 0.2 {
		t.Fatalf("summary decay rate: got %g, want 0.2", res.Summary.DecayRateUsed)
	}
}

func TestWebSocket_InvalidParametersKeepConnectionAlive(t *testing.T) {
	conn, teardown := dialWS(t, service.NewService())
	defer teardown()

	_ = resultPayload(t, readEnvelope(t, conn))

	// Out-of-range decay rate: error envelope, no disconnect.
	if err := conn.WriteJSON(map[string]float64{"decay_rate": 5}); err != nil {
		t.Fatalf("write params: %v", err)
	}
	env := readEnvelope(t, conn)
	if env.Type != "error" || env.Error == "" {
		t.Fatalf("expected error envelope, got %+v", env)
	}

	// The next valid request still gets a result.
	if err := conn.WriteJSON(map[string]float64{"decay_rate": 0.1}); err != nil {
		t.Fatalf("write params: %v", err)
	}
	res := resultPayload(t, readEnvelope(t, conn))
	if res.Summary.DecayRateUsed != 0.1 {
		t.Fatalf("summary decay rate: got %g, want 0.1", res.Summary.DecayRateUsed)
	}
}

func TestWebSocket_MalformedMessageReportsParseError(t *testing.T) {
	conn, teardown := dialWS(t, service.NewService())
	defer teardown()

	_ = resultPayload(t, readEnvelope(t, conn))

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"decay_rate":`)); err != nil {
		t.Fatalf("write raw: %v", err)
	}
	env := readEnvelope(t, conn)
	if env.Type != "error" || !strings.HasPrefix(env.Error, errInvalidBodyPref) {
		t.Fatalf("expected parse error envelope, got %+v", env)
	}
}
