package service

import (
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
)

// Simulation runs the dose-response and kinetics pipeline for one
// parameter set. Runs are pure: no state survives between calls.
type Simulation interface {
	Run(p models.SimulationParameters) (models.SimulationResult, error)
	Defaults() models.SimulationParameters
	Bounds() models.ParameterBounds
}

// Export serializes result tables for one-shot download. Delivery of
// the returned bytes (HTTP attachment, file on disk) is the caller's
// concern.
type Export interface {
	ApplicationsCSV(rows []models.ApplicationRow) ([]byte, error)
	DegradationCSV(rows []models.DegradationRow) ([]byte, error)
	Workbook(res models.SimulationResult) ([]byte, error)
}

// Render draws result curves as PNG charts.
type Render interface {
	Chart(kind ChartKind, res models.SimulationResult) ([]byte, error)
}

//
// Root Service aggregates all sub-services consumed by the HTTP layer
// and the CLI.
//

type Service struct {
	Simulation
	Export
	Render
}

// NewService wires the concrete sub-services. There is no storage layer
// to inject: every service is a stateless transformation.
func NewService() *Service {
	return &Service{
		Simulation: NewSimulationService(),
		Export:     NewExportService(),
		Render:     NewRenderService(),
	}
}
