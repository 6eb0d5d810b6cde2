package models

// SummaryMetrics are the headline numbers read directly off the
// assembled tables: each assay's maximum and where it occurs, plus the
// degradation reached at the end of the time axis.
type SummaryMetrics struct {
	MaxZOI                  float64 `json:"max_zoi"`                   // mm
	MaxZOIConcentration     float64 `json:"max_zoi_concentration"`     // µg/ml
	MaxBiofilm              float64 `json:"max_biofilm"`               // %
	MaxBiofilmConcentration float64 `json:"max_biofilm_concentration"` // µg/ml
	MaxRSA                  float64 `json:"max_rsa"`                   // %
	MaxRSAConcentration     float64 `json:"max_rsa_concentration"`     // µg/ml
	DegradationPercentAt60  float64 `json:"degradation_percent_at_60"` // %
	DecayRateUsed           float64 `json:"decay_rate_used"`           // 1/min
}

// SimulationResult bundles everything one run produces.
type SimulationResult struct {
	Applications []ApplicationRow `json:"applications"`
	Degradation  []DegradationRow `json:"degradation"`
	Summary      SummaryMetrics   `json:"summary"`
}
