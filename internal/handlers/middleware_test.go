package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/logger"
)

// minimal router wiring only the logging middleware + probe endpoints
func newLoggingOnlyRouter(log *logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil, log)
	r.Use(h.requestLogger())
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRequestLogger_DebugEntryForSuccess(t *testing.T) {
	log, logs := observedLogger()
	r := newLoggingOnlyRouter(log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.DebugLevel {
		t.Fatalf("level: got %v, want debug", e.Level)
	}
	ctx := e.ContextMap()
	if ctx["method"] != http.MethodGet || ctx["path"] != "/probe" {
		t.Fatalf("unexpected fields: %+v", ctx)
	}
	if ctx["status"] != int64(http.StatusOK) {
		t.Fatalf("status field: got %v, want %d", ctx["status"], http.StatusOK)
	}
}

func TestRequestLogger_ErrorEntryForServerFailure(t *testing.T) {
	log, logs := observedLogger()
	r := newLoggingOnlyRouter(log)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("level: got %v, want error", entries[0].Level)
	}
	if entries[0].ContextMap()["status"] != int64(http.StatusInternalServerError) {
		t.Fatalf("status field: got %v", entries[0].ContextMap()["status"])
	}
}

func TestRequestLogger_NilLoggerIsSafe(t *testing.T) {
	r := newLoggingOnlyRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}
}
