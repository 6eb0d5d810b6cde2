package models

// Slider bounds and defaults for the three simulation parameters.
// The presentation layer constrains its inputs to these ranges before
// calling the core; the core re-validates them as a defensive contract.
const (
	MinMaxConcentration     = 10.0
	MaxMaxConcentration     = 200.0
	DefaultMaxConcentration = 100.0
	StepMaxConcentration    = 10.0

	MinConcentrationStep     = 1.0
	MaxConcentrationStep     = 20.0
	DefaultConcentrationStep = 10.0
	StepConcentrationStep    = 1.0

	MinDecayRate     = 0.01
	MaxDecayRate     = 0.2
	DefaultDecayRate = 0.05
	StepDecayRate    = 0.01
)

// SimulationParameters is the entire external configuration surface of
// one simulation run.
type SimulationParameters struct {
	MaxConcentration  float64 `json:"max_concentration"`  // µg/ml
	ConcentrationStep float64 `json:"concentration_step"` // µg/ml
	DecayRate         float64 `json:"decay_rate"`         // 1/min
}

// DefaultParameters returns the parameter set the UI starts from.
func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		MaxConcentration:  DefaultMaxConcentration,
		ConcentrationStep: DefaultConcentrationStep,
		DecayRate:         DefaultDecayRate,
	}
}

// ParameterRange describes one bounded control: limits, UI increment,
// and starting value.
type ParameterRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// ParameterBounds groups the three control ranges for the presentation
// layer.
type ParameterBounds struct {
	MaxConcentration  ParameterRange `json:"max_concentration"`
	ConcentrationStep ParameterRange `json:"concentration_step"`
	DecayRate         ParameterRange `json:"decay_rate"`
}

// Bounds returns the control configuration matching the published
// parameter ranges.
func Bounds() ParameterBounds {
	return ParameterBounds{
		MaxConcentration: ParameterRange{
			Min:     MinMaxConcentration,
			Max:     MaxMaxConcentration,
			Step:    StepMaxConcentration,
			Default: DefaultMaxConcentration,
		},
		ConcentrationStep: ParameterRange{
			Min:     MinConcentrationStep,
			Max:     MaxConcentrationStep,
			Step:    StepConcentrationStep,
			Default: DefaultConcentrationStep,
		},
		DecayRate: ParameterRange{
			Min:     MinDecayRate,
			Max:     MaxDecayRate,
			Step:    StepDecayRate,
			Default: DefaultDecayRate,
		},
	}
}
