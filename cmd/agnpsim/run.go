package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

var (
	runMaxConcentration  float64
	runConcentrationStep float64
	runDecayRate         float64
	runOutputDir         string
	runFormat            string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print or export the tables",
	Long:  "run executes a single simulation; without --output it prints both tables and the summary, with --output it writes the export files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		services := service.NewService()
		params := models.SimulationParameters{
			MaxConcentration:  runMaxConcentration,
			ConcentrationStep: runConcentrationStep,
			DecayRate:         runDecayRate,
		}
		res, err := services.Simulation.Run(params)
		if err != nil {
			return err
		}

		if runOutputDir == "" {
			return printResult(cmd, res)
		}
		return exportResult(cmd, services, res)
	},
}

func init() {
	def := models.DefaultParameters()
	runCmd.Flags().Float64Var(&runMaxConcentration, "max-concentration", def.MaxConcentration, "Highest AgNP concentration on the axis, µg/ml")
	runCmd.Flags().Float64Var(&runConcentrationStep, "concentration-step", def.ConcentrationStep, "Concentration axis spacing, µg/ml")
	runCmd.Flags().Float64Var(&runDecayRate, "decay-rate", def.DecayRate, "First-order dye decay rate, 1/min")
	runCmd.Flags().StringVar(&runOutputDir, "output", "", "Directory to write export files into (prints tables when empty)")
	runCmd.Flags().StringVar(&runFormat, "format", "csv", "Export format: csv or xlsx")
}

func printResult(cmd *cobra.Command, res models.SimulationResult) error {
	out := cmd.OutOrStdout()

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Concentration (µg/ml)\tZone of Inhibition (mm)\tBiofilm Inhibition (%)\tAntioxidant RSA (%)")
	for _, row := range res.Applications {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\n",
			row.Concentration, row.ZoneOfInhibition, row.BiofilmInhibition, row.AntioxidantRSA)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Time (min)\tRemaining Dye (mg/L)")
	for _, row := range res.Degradation {
		fmt.Fprintf(tw, "%.2f\t%.2f\n", row.Time, row.RemainingDye)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sum := res.Summary
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Max Zone of Inhibition: %.2f mm at %g µg/ml\n", sum.MaxZOI, sum.MaxZOIConcentration)
	fmt.Fprintf(out, "Max Biofilm Inhibition: %.2f %% at %g µg/ml\n", sum.MaxBiofilm, sum.MaxBiofilmConcentration)
	fmt.Fprintf(out, "Max Antioxidant RSA:    %.2f %% at %g µg/ml\n", sum.MaxRSA, sum.MaxRSAConcentration)
	fmt.Fprintf(out, "Dye Degradation at 60 min: %.2f %% (k=%g 1/min)\n", sum.DegradationPercentAt60, sum.DecayRateUsed)
	return nil
}

func exportResult(cmd *cobra.Command, services *service.Service, res models.SimulationResult) error {
	if err := os.MkdirAll(runOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	switch runFormat {
	case "csv":
		apps, err := services.Export.ApplicationsCSV(res.Applications)
		if err != nil {
			return err
		}
		deg, err := services.Export.DegradationCSV(res.Degradation)
		if err != nil {
			return err
		}
		if err := writeExportFile(cmd, service.ApplicationsCSVName, apps); err != nil {
			return err
		}
		return writeExportFile(cmd, service.DegradationCSVName, deg)
	case "xlsx":
		book, err := services.Export.Workbook(res)
		if err != nil {
			return err
		}
		return writeExportFile(cmd, service.WorkbookName, book)
	default:
		return fmt.Errorf("unknown format %q (want csv or xlsx)", runFormat)
	}
}

func writeExportFile(cmd *cobra.Command, name string, body []byte) error {
	path := filepath.Join(runOutputDir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
