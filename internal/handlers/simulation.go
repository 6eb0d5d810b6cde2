package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errRunSimulation   = "failed to run simulation"
	errExportResult    = "failed to export simulation result"
	errRenderChart     = "failed to render chart"
	errInvalidBodyPref = "invalid body: "
	errInvalidQuery    = "invalid query: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondSimulationError maps service errors onto HTTP statuses:
// parameter problems are the client's fault, everything else is ours.
func (h *Handler) respondSimulationError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if errors.Is(err, service.ErrInvalidParameter) {
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Warnw(logKey, fields...)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errRunSimulation, logKey, err, kv...)
}

// Request DTO for a simulation run. Absent fields fall back to the
// laboratory defaults, so an empty body runs the default scenario.
type runRequest struct {
	MaxConcentration  *float64 `json:"max_concentration"`
	ConcentrationStep *float64 `json:"concentration_step"`
	DecayRate         *float64 `json:"decay_rate"`
}

// RunSimulationRequest is an exported model for Swagger docs of the run payload.
type RunSimulationRequest struct {
	// Highest AgNP concentration on the axis, µg/ml (10..200)
	MaxConcentration float64 `json:"max_concentration" example:"100"`
	// Axis spacing, µg/ml (1..20)
	ConcentrationStep float64 `json:"concentration_step" example:"10"`
	// First-order dye decay rate, 1/min (0.01..0.2)
	DecayRate float64 `json:"decay_rate" example:"0.05"`
}

// parameters resolves the request against the defaults.
func (r runRequest) parameters(def models.SimulationParameters) models.SimulationParameters {
	p := def
	if r.MaxConcentration != nil {
		p.MaxConcentration = *r.MaxConcentration
	}
	if r.ConcentrationStep != nil {
		p.ConcentrationStep = *r.ConcentrationStep
	}
	if r.DecayRate != nil {
		p.DecayRate = *r.DecayRate
	}
	return p
}

type runResponse struct {
	RunID        string                      `json:"run_id"`
	GeneratedAt  time.Time                   `json:"generated_at"`
	Parameters   models.SimulationParameters `json:"parameters"`
	Applications []models.ApplicationRow     `json:"applications"`
	Degradation  []models.DegradationRow     `json:"degradation"`
	Summary      models.SummaryMetrics       `json:"summary"`
}

// modelNote documents one empirical curve for API consumers.
type modelNote struct {
	Metric  string `json:"metric"`
	Formula string `json:"formula"`
	Units   string `json:"units"`
}

var modelNotes = []modelNote{
	{Metric: "zone_of_inhibition", Formula: "max(0, 5 + 0.15c - 0.001c²)", Units: "mm"},
	{Metric: "biofilm_inhibition", Formula: "clamp(20 + 0.6c - 0.003c², 0, 100)", Units: "%"},
	{Metric: "antioxidant_rsa", Formula: "clamp(10 + 0.7c - 0.002c², 0, 100)", Units: "%"},
	{Metric: "remaining_dye", Formula: "100·e^(-k·t)", Units: "mg/L"},
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Default parameters and bounds
// @Description  Returns the laboratory defaults, the admissible range per parameter and the model formulas
// @Tags         simulation
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "parameters, bounds, models"
// @Router       /api/v1/simulation/defaults [get]
func (h *Handler) getDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"parameters": h.services.Simulation.Defaults(),
		"bounds":     h.services.Simulation.Bounds(),
		"models":     modelNotes,
	})
}

// @Summary      Run a simulation
// @Description  Computes both tables and the summary for one parameter set; omitted fields use the defaults
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Param        body  body   RunSimulationRequest  false  "Simulation parameters"
// @Success      200   {object}  map[string]interface{}  "run_id, generated_at, parameters, applications, degradation, summary"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/simulation/run [post]
func (h *Handler) runSimulation(c *gin.Context) {
	var req runRequest
	// An absent body means "run the defaults", so EOF is not an error.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	params := req.parameters(h.services.Simulation.Defaults())
	res, err := h.services.Simulation.Run(params)
	if err != nil {
		h.respondSimulationError(c, "simulation_run_failed", err, "params", params)
		return
	}

	c.JSON(http.StatusOK, runResponse{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Parameters:   params,
		Applications: res.Applications,
		Degradation:  res.Degradation,
		Summary:      res.Summary,
	})
}
