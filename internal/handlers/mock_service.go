package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

// ---- Service Mocks ----

type mockSimulation struct {
	result models.SimulationResult
	err    error

	lastParams models.SimulationParameters
	runCalls   int
}

func (m *mockSimulation) Run(p models.SimulationParameters) (models.SimulationResult, error) {
	m.runCalls++
	m.lastParams = p
	return m.result, m.err
}
func (m *mockSimulation) Defaults() models.SimulationParameters {
	return models.DefaultParameters()
}
func (m *mockSimulation) Bounds() models.ParameterBounds {
	return models.Bounds()
}

type mockExport struct {
	csvBody  []byte
	csvErr   error
	bookBody []byte
	bookErr  error

	lastAppRows []models.ApplicationRow
	lastDegRows []models.DegradationRow
}

func (m *mockExport) ApplicationsCSV(rows []models.ApplicationRow) ([]byte, error) {
	m.lastAppRows = rows
	return m.csvBody, m.csvErr
}
func (m *mockExport) DegradationCSV(rows []models.DegradationRow) ([]byte, error) {
	m.lastDegRows = rows
	return m.csvBody, m.csvErr
}
func (m *mockExport) Workbook(res models.SimulationResult) ([]byte, error) {
	return m.bookBody, m.bookErr
}

type mockRender struct {
	img      []byte
	err      error
	lastKind service.ChartKind
}

func (m *mockRender) Chart(kind service.ChartKind, res models.SimulationResult) ([]byte, error) {
	m.lastKind = kind
	return m.img, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
