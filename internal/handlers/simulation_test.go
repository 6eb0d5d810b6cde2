package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

func cannedResult() models.SimulationResult {
	return models.SimulationResult{
		Applications: []models.ApplicationRow{
			{Concentration: 0, ZoneOfInhibition: 5, BiofilmInhibition: 20, AntioxidantRSA: 10},
			{Concentration: 10, ZoneOfInhibition: 6.4, BiofilmInhibition: 25.7, AntioxidantRSA: 16.8},
		},
		Degradation: []models.DegradationRow{
			{Time: 0, RemainingDye: 100},
			{Time: 60, RemainingDye: 4.98},
		},
		Summary: models.SummaryMetrics{
			MaxZOI:                 6.4,
			MaxZOIConcentration:    10,
			DegradationPercentAt60: 95.02,
			DecayRateUsed:          0.05,
		},
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if resp["status"] != statusOK {
		t.Fatalf("expected status %q, got %+v", statusOK, resp)
	}
}

func TestGetDefaults_ParametersBoundsAndModels(t *testing.T) {
	s := &service.Service{Simulation: &mockSimulation{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/simulation/defaults", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("defaults status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Parameters models.SimulationParameters `json:"parameters"`
		Bounds     models.ParameterBounds      `json:"bounds"`
		Models     []modelNote                 `json:"models"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal defaults: %v", err)
	}
	if resp.Parameters != models.DefaultParameters() {
		t.Fatalf("unexpected default parameters: %+v", resp.Parameters)
	}
	if resp.Bounds.DecayRate.Min != models.MinDecayRate || resp.Bounds.DecayRate.Max != models.MaxDecayRate {
		t.Fatalf("unexpected decay rate bounds: %+v", resp.Bounds.DecayRate)
	}
	if len(resp.Models) != 4 {
		t.Fatalf("expected 4 model notes, got %d", len(resp.Models))
	}
}

func TestRunSimulation_MergesPartialBodyWithDefaults(t *testing.T) {
	sim := &mockSimulation{result: cannedResult()}
	r := newTestRouter(&service.Service{Simulation: sim})

	body := bytes.NewBufferString(`{"max_concentration":50}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("run status=%d, body=%s", w.Code, w.Body.String())
	}

	want := models.SimulationParameters{MaxConcentration: 50, ConcentrationStep: 10, DecayRate: 0.05}
	if sim.lastParams != want {
		t.Fatalf("service got %+v, want %+v", sim.lastParams, want)
	}

	var resp runResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal run response: %v", err)
	}
	if resp.RunID == "" {
		t.Fatalf("missing run_id in response")
	}
	if resp.GeneratedAt.IsZero() {
		t.Fatalf("missing generated_at in response")
	}
	if resp.Parameters != want {
		t.Fatalf("parameters echo: got %+v, want %+v", resp.Parameters, want)
	}
	if len(resp.Applications) != 2 || len(resp.Degradation) != 2 {
		t.Fatalf("unexpected table sizes: %d applications, %d degradation", len(resp.Applications), len(resp.Degradation))
	}
	if resp.Summary.DegradationPercentAt60 != 95.02 {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}
}

func TestRunSimulation_EmptyBodyRunsDefaults(t *testing.T) {
	sim := &mockSimulation{result: cannedResult()}
	r := newTestRouter(&service.Service{Simulation: sim})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("run status=%d, body=%s", w.Code, w.Body.String())
	}
	if sim.lastParams != models.DefaultParameters() {
		t.Fatalf("service got %+v, want defaults", sim.lastParams)
	}
}

func TestRunSimulation_MalformedBody400(t *testing.T) {
	sim := &mockSimulation{result: cannedResult()}
	r := newTestRouter(&service.Service{Simulation: sim})

	body := bytes.NewBufferString(`{"max_concentration":"high"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
	if sim.runCalls != 0 {
		t.Fatalf("service should not run on malformed body")
	}
}

func TestRunSimulation_InvalidParameter400(t *testing.T) {
	sim := &mockSimulation{err: fmt.Errorf("%w: decay_rate must be between 0.01 and 0.2, got 5", service.ErrInvalidParameter)}
	r := newTestRouter(&service.Service{Simulation: sim})

	body := bytes.NewBufferString(`{"decay_rate":5}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d, body=%s", w.Code, w.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == "" {
		t.Fatalf("expected error message in body, got %s", w.Body.String())
	}
}

func TestRunSimulation_ServiceFailure500(t *testing.T) {
	sim := &mockSimulation{err: errors.New("boom")}
	r := newTestRouter(&service.Service{Simulation: sim})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != errRunSimulation {
		t.Fatalf("expected %q, got %+v", errRunSimulation, resp)
	}
}
