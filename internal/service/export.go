package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
)

// ----------- Export layout -----------

// Canonical export filenames, shared by the HTTP downloads and the CLI.
const (
	ApplicationsCSVName = "agnp_applications.csv"
	DegradationCSVName  = "dye_degradation.csv"
	WorkbookName        = "agnp_simulation.xlsx"
)

const (
	sheetApplications = "Applications"
	sheetDegradation  = "Dye Degradation"
	sheetSummary      = "Summary"
)

// Column headers carry the measurement unit so exported files stay
// self-describing outside the app.
var (
	applicationHeaders = []string{
		"Concentration (µg/ml)",
		"Zone of Inhibition (mm)",
		"Biofilm Inhibition (%)",
		"Antioxidant RSA (%)",
	}
	degradationHeaders = []string{
		"Time (min)",
		"Remaining Dye (mg/L)",
	}
)

// ExportService serializes simulation tables to CSV and XLSX.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ApplicationsCSV renders the dose-response table as CSV, one row per
// concentration in axis order.
func (s *ExportService) ApplicationsCSV(rows []models.ApplicationRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			cell(row.Concentration),
			cell(row.ZoneOfInhibition),
			cell(row.BiofilmInhibition),
			cell(row.AntioxidantRSA),
		})
	}
	return writeCSV(applicationHeaders, records)
}

// DegradationCSV renders the dye kinetics table as CSV, one row per
// sampling time.
func (s *ExportService) DegradationCSV(rows []models.DegradationRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			cell(row.Time),
			cell(row.RemainingDye),
		})
	}
	return writeCSV(degradationHeaders, records)
}

// Workbook renders the whole result as a three-sheet XLSX workbook:
// both tables plus the summary metrics.
func (s *ExportService) Workbook(res models.SimulationResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetApplications); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetDegradation); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", sheetDegradation, err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", sheetSummary, err)
	}

	if err := streamApplicationSheet(f, res.Applications); err != nil {
		return nil, err
	}
	if err := streamDegradationSheet(f, res.Degradation); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, res.Summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// streamApplicationSheet fills the dose-response sheet through the
// stream writer, which keeps memory flat however long the axis gets.
func streamApplicationSheet(f *excelize.File, rows []models.ApplicationRow) error {
	sw, err := f.NewStreamWriter(sheetApplications)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}
	if err := sw.SetRow("A1", headerCells(applicationHeaders)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Concentration, row.ZoneOfInhibition, row.BiofilmInhibition, row.AntioxidantRSA}
		if err := sw.SetRow(anchor, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return sw.Flush()
}

func streamDegradationSheet(f *excelize.File, rows []models.DegradationRow) error {
	sw, err := f.NewStreamWriter(sheetDegradation)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}
	if err := sw.SetRow("A1", headerCells(degradationHeaders)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(anchor, []interface{}{row.Time, row.RemainingDye}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return sw.Flush()
}

// writeSummarySheet lays the summary out as metric/value pairs. The
// sheet is tiny, so the plain cell API is enough here.
func writeSummarySheet(f *excelize.File, sum models.SummaryMetrics) error {
	entries := []struct {
		label string
		value float64
	}{
		{"Max Zone of Inhibition (mm)", sum.MaxZOI},
		{"Optimal Concentration for ZOI (µg/ml)", sum.MaxZOIConcentration},
		{"Max Biofilm Inhibition (%)", sum.MaxBiofilm},
		{"Optimal Concentration for Biofilm (µg/ml)", sum.MaxBiofilmConcentration},
		{"Max Antioxidant RSA (%)", sum.MaxRSA},
		{"Optimal Concentration for RSA (µg/ml)", sum.MaxRSAConcentration},
		{"Dye Degradation at 60 min (%)", sum.DegradationPercentAt60},
		{"Decay Rate Used (1/min)", sum.DecayRateUsed},
	}

	if err := f.SetSheetRow(sheetSummary, "A1", &[]interface{}{"Metric", "Value"}); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for i, e := range entries {
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, anchor, &[]interface{}{e.label, e.value}); err != nil {
			return fmt.Errorf("write summary row %q: %w", e.label, err)
		}
	}
	return nil
}

func headerCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

// cell renders a numeric cell with the fixed two-decimal precision used
// across all exports.
func cell(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
