package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
)

// ChartKind selects one of the four result curves.
type ChartKind string

const (
	ChartInhibition  ChartKind = "inhibition"
	ChartBiofilm     ChartKind = "biofilm"
	ChartAntioxidant ChartKind = "antioxidant"
	ChartDegradation ChartKind = "degradation"
)

// ErrUnknownChart reports a chart kind outside the supported curves.
var ErrUnknownChart = errors.New("unknown chart kind")

// ----------- Chart appearance -----------
const (
	chartWidth       = 1280
	chartHeight      = 720
	chartStrokeWidth = 2.0
)

var (
	colorInhibition  = drawing.ColorBlue
	colorBiofilm     = drawing.ColorGreen
	colorAntioxidant = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	colorDegradation = drawing.ColorRed
)

// RenderService draws result curves as PNG line charts.
type RenderService struct{}

func NewRenderService() *RenderService {
	return &RenderService{}
}

// Chart renders the selected curve from an assembled result. Percentage
// curves are drawn on a fixed 0..100 scale so charts from different
// runs stay comparable.
func (s *RenderService) Chart(kind ChartKind, res models.SimulationResult) ([]byte, error) {
	switch kind {
	case ChartInhibition:
		xs, ys := applicationSeries(res.Applications, func(r models.ApplicationRow) float64 { return r.ZoneOfInhibition })
		return lineChart("Zone of Inhibition vs Concentration",
			"Concentration (µg/ml)", "Zone of Inhibition (mm)",
			xs, ys, colorInhibition, nil)
	case ChartBiofilm:
		xs, ys := applicationSeries(res.Applications, func(r models.ApplicationRow) float64 { return r.BiofilmInhibition })
		return lineChart("Biofilm Inhibition vs Concentration",
			"Concentration (µg/ml)", "Biofilm Inhibition (%)",
			xs, ys, colorBiofilm, percentRange())
	case ChartAntioxidant:
		xs, ys := applicationSeries(res.Applications, func(r models.ApplicationRow) float64 { return r.AntioxidantRSA })
		return lineChart("Antioxidant Activity (RSA) vs Concentration",
			"Concentration (µg/ml)", "Antioxidant RSA (%)",
			xs, ys, colorAntioxidant, percentRange())
	case ChartDegradation:
		xs, ys := degradationSeries(res.Degradation)
		return lineChart("Dye Degradation Over Time",
			"Time (min)", "Remaining Dye (mg/L)",
			xs, ys, colorDegradation, nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, kind)
	}
}

func applicationSeries(rows []models.ApplicationRow, pick func(models.ApplicationRow) float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, row := range rows {
		xs = append(xs, row.Concentration)
		ys = append(ys, pick(row))
	}
	return xs, ys
}

func degradationSeries(rows []models.DegradationRow) ([]float64, []float64) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, row := range rows {
		xs = append(xs, row.Time)
		ys = append(ys, row.RemainingDye)
	}
	return xs, ys
}

func percentRange() chart.Range {
	return &chart.ContinuousRange{Min: 0, Max: 100}
}

func lineChart(title, xName, yName string, xs, ys []float64, color drawing.Color, yRange chart.Range) ([]byte, error) {
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  xName,
			Style: chart.Shown(),
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Style: chart.Shown(),
			Range: yRange,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: color,
					StrokeWidth: chartStrokeWidth,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
