package models

// ApplicationRow is one concentration point evaluated across the three
// dose-response assays. Values carry the 2-decimal rounding applied by
// the response models.
type ApplicationRow struct {
	Concentration     float64 `json:"concentration"`      // µg/ml
	ZoneOfInhibition  float64 `json:"zone_of_inhibition"` // mm
	BiofilmInhibition float64 `json:"biofilm_inhibition"` // %
	AntioxidantRSA    float64 `json:"antioxidant_rsa"`    // %
}

// DegradationRow is one time point of the photocatalytic decay curve.
type DegradationRow struct {
	Time         float64 `json:"time"`          // min
	RemainingDye float64 `json:"remaining_dye"` // mg/L
}
