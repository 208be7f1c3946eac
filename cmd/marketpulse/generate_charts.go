package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketpulse/internal/config"
	"github.com/jonathan/marketpulse/internal/observability"
	"github.com/jonathan/marketpulse/internal/orgchart"
)

var (
	generateAll     bool
	generateVerbose bool
)

var generateChartsCmd = &cobra.Command{
	Use:   "generate-charts [company...]",
	Short: "Generate buying-group org charts from the workbook",
	Long: `Generate org chart HTML files for the named companies, skipping charts
that already exist on disk. With --all, every company in the workbook is
processed.`,
	RunE: runGenerateCharts,
}

func init() {
	generateChartsCmd.Flags().BoolVar(&generateAll, "all", false, "Generate charts for every company in the workbook")
	generateChartsCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a summary box after the run")
	rootCmd.AddCommand(generateChartsCmd)
}

func runGenerateCharts(_ *cobra.Command, args []string) error {
	if !generateAll && len(args) == 0 {
		return fmt.Errorf("name at least one company or pass --all")
	}

	sheetConfig, err := config.NewSheetConfig()
	if err != nil {
		return fmt.Errorf("failed to load sheet config: %w", err)
	}

	store, err := orgchart.NewFSStore(sheetConfig.ChartOutputDir)
	if err != nil {
		return fmt.Errorf("failed to create chart store: %w", err)
	}
	service := orgchart.NewService(sheetConfig.Path, sheetConfig.LegacyPath, store)

	companies := args
	if generateAll {
		companies, err = service.Companies()
		if err != nil {
			return fmt.Errorf("failed to list workbook companies: %w", err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	if generateVerbose {
		printer.PrintCompanies(companies)
	}

	report, err := service.GenerateSelected(companies)
	if err != nil {
		return fmt.Errorf("chart generation failed: %w", err)
	}

	if generateVerbose {
		printer.PrintBatchReport(report)
	} else {
		fmt.Println(report.Message)
	}
	return nil
}
