package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
)

// ErrInvalidParameter reports a simulation parameter outside its
// laboratory range. Callers map it to a client error.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// ----------- Sampling axes -----------
const (
	timeHorizonMinutes = 60.0 // dye assay duration
	timeSamples        = 13   // one reading every 5 minutes
)

// SimulationService implements the full pipeline: parameter validation,
// axis generation, model evaluation and summary extraction.
type SimulationService struct{}

func NewSimulationService() *SimulationService {
	return &SimulationService{}
}

// Run executes one simulation. The returned result is fully assembled:
// both tables row-aligned with their axes plus the derived summary.
// Invalid parameters abort before any rows are computed.
func (s *SimulationService) Run(p models.SimulationParameters) (models.SimulationResult, error) {
	if err := validateParameters(p); err != nil {
		return models.SimulationResult{}, err
	}

	applications := buildApplicationRows(concentrationAxis(p.MaxConcentration, p.ConcentrationStep))
	degradation := buildDegradationRows(timeAxis(), p.DecayRate)

	return models.SimulationResult{
		Applications: applications,
		Degradation:  degradation,
		Summary:      summarize(applications, degradation, p.DecayRate),
	}, nil
}

// Defaults returns the parameter set a fresh session starts from.
func (s *SimulationService) Defaults() models.SimulationParameters {
	return models.DefaultParameters()
}

// Bounds returns the admissible range and step for every parameter.
func (s *SimulationService) Bounds() models.ParameterBounds {
	return models.Bounds()
}

func validateParameters(p models.SimulationParameters) error {
	if err := checkRange("max_concentration", p.MaxConcentration,
		models.MinMaxConcentration, models.MaxMaxConcentration); err != nil {
		return err
	}
	if err := checkRange("concentration_step", p.ConcentrationStep,
		models.MinConcentrationStep, models.MaxConcentrationStep); err != nil {
		return err
	}
	if p.ConcentrationStep > p.MaxConcentration {
		return fmt.Errorf("%w: concentration_step %g exceeds max_concentration %g",
			ErrInvalidParameter, p.ConcentrationStep, p.MaxConcentration)
	}
	return checkRange("decay_rate", p.DecayRate,
		models.MinDecayRate, models.MaxDecayRate)
}

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidParameter, name)
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g, got %g",
			ErrInvalidParameter, name, lo, hi, v)
	}
	return nil
}

// concentrationAxis generates 0, step, 2·step, ... and keeps every
// candidate strictly below max+step. The upper bound is inclusive when
// max is a multiple of step and may overshoot max by less than one step
// otherwise. Each candidate is a fresh multiplication, so long axes do
// not accumulate float error.
func concentrationAxis(max, step float64) []float64 {
	limit := max + step
	var axis []float64
	for i := 0; ; i++ {
		c := round2(float64(i) * step)
		if c >= limit {
			return axis
		}
		axis = append(axis, c)
	}
}

// timeAxis spans 0..60 minutes in 13 evenly spaced readings.
func timeAxis() []float64 {
	axis := make([]float64, timeSamples)
	for i := range axis {
		axis[i] = timeHorizonMinutes * float64(i) / float64(timeSamples-1)
	}
	return axis
}

func buildApplicationRows(axis []float64) []models.ApplicationRow {
	rows := make([]models.ApplicationRow, 0, len(axis))
	for _, c := range axis {
		rows = append(rows, models.ApplicationRow{
			Concentration:     c,
			ZoneOfInhibition:  zoneOfInhibition(c),
			BiofilmInhibition: biofilmInhibition(c),
			AntioxidantRSA:    antioxidantRSA(c),
		})
	}
	return rows
}

func buildDegradationRows(times []float64, decayRate float64) []models.DegradationRow {
	rows := make([]models.DegradationRow, 0, len(times))
	for _, t := range times {
		rows = append(rows, models.DegradationRow{
			Time:         t,
			RemainingDye: remainingDye(t, decayRate),
		})
	}
	return rows
}
