package service

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
)

func TestChart_RendersPNGForEveryKind(t *testing.T) {
	res, err := NewSimulationService().Run(models.DefaultParameters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc := NewRenderService()
	for _, kind := range []ChartKind{ChartInhibition, ChartBiofilm, ChartAntioxidant, ChartDegradation} {
		img, err := svc.Chart(kind, res)
		if err != nil {
			t.Fatalf("chart %q: %v", kind, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(img))
		if err != nil {
			t.Fatalf("chart %q is not a decodable PNG: %v", kind, err)
		}
		if cfg.Width != chartWidth || cfg.Height != chartHeight {
			t.Fatalf("chart %q: got %dx%d, want %dx%d", kind, cfg.Width, cfg.Height, chartWidth, chartHeight)
		}
	}
}

func TestChart_UnknownKindFails(t *testing.T) {
	_, err := NewRenderService().Chart("histogram", models.SimulationResult{})
	if !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("got %v, want ErrUnknownChart", err)
	}
}
