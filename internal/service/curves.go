package service

import "math"

// ----------- Dose-response coefficients -----------
// Quadratic fits of the laboratory AgNP assay data. Concentrations are
// in µg/ml throughout.
const (
	zoiBase      = 5.0   // mm, inhibition zone at zero dose
	zoiLinear    = 0.15  // mm per µg/ml
	zoiQuadratic = 0.001 // mm per (µg/ml)²

	biofilmBase      = 20.0  // %
	biofilmLinear    = 0.6   // % per µg/ml
	biofilmQuadratic = 0.003 // % per (µg/ml)²

	rsaBase      = 10.0  // %
	rsaLinear    = 0.7   // % per µg/ml
	rsaQuadratic = 0.002 // % per (µg/ml)²
)

// ----------- Degradation kinetics -----------
const (
	initialDyeConcentration = 100.0 // mg/L at t=0
)

// zoneOfInhibition models the antimicrobial zone of inhibition in mm at
// concentration c. The parabola opens downward; past its vertex the
// value is floored at zero rather than reported negative.
func zoneOfInhibition(c float64) float64 {
	v := zoiBase + zoiLinear*c - zoiQuadratic*c*c
	return round2(math.Max(0, v))
}

// biofilmInhibition models biofilm inhibition in percent at
// concentration c, clamped to the physical 0..100 range.
func biofilmInhibition(c float64) float64 {
	v := biofilmBase + biofilmLinear*c - biofilmQuadratic*c*c
	return round2(clamp(v, 0, 100))
}

// antioxidantRSA models radical scavenging activity in percent at
// concentration c, clamped to the physical 0..100 range.
func antioxidantRSA(c float64) float64 {
	v := rsaBase + rsaLinear*c - rsaQuadratic*c*c
	return round2(clamp(v, 0, 100))
}

// remainingDye models first-order photocatalytic decay: the dye
// concentration in mg/L remaining after t minutes at decay rate k.
func remainingDye(t, k float64) float64 {
	return round2(initialDyeConcentration * math.Exp(-k*t))
}

// round2 rounds to two decimal places, the presentation precision used
// by every table, summary and export in the pipeline.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
