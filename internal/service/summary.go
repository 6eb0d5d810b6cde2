package service

import "github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"

// summarize extracts the headline metrics from assembled tables: the
// peak of each application curve with the concentration that first
// reaches it, and the dye removal achieved by the end of the assay.
// Ties resolve to the lowest concentration because scanning is in axis
// order under strict comparison.
func summarize(apps []models.ApplicationRow, deg []models.DegradationRow, decayRate float64) models.SummaryMetrics {
	sum := models.SummaryMetrics{DecayRateUsed: decayRate}
	if len(apps) > 0 {
		first := apps[0]
		sum.MaxZOI = first.ZoneOfInhibition
		sum.MaxZOIConcentration = first.Concentration
		sum.MaxBiofilm = first.BiofilmInhibition
		sum.MaxBiofilmConcentration = first.Concentration
		sum.MaxRSA = first.AntioxidantRSA
		sum.MaxRSAConcentration = first.Concentration
		for _, row := range apps[1:] {
			if row.ZoneOfInhibition > sum.MaxZOI {
				sum.MaxZOI = row.ZoneOfInhibition
				sum.MaxZOIConcentration = row.Concentration
			}
			if row.BiofilmInhibition > sum.MaxBiofilm {
				sum.MaxBiofilm = row.BiofilmInhibition
				sum.MaxBiofilmConcentration = row.Concentration
			}
			if row.AntioxidantRSA > sum.MaxRSA {
				sum.MaxRSA = row.AntioxidantRSA
				sum.MaxRSAConcentration = row.Concentration
			}
		}
	}
	if len(deg) > 0 {
		final := deg[len(deg)-1]
		sum.DegradationPercentAt60 = round2(100 - final.RemainingDye)
	}
	return sum
}
