// Package config provides environment-driven configuration for the server and CLI.
package config

import (
	"fmt"
	"os"
)

// legacySheetPath is the fixed fallback location probed when the configured
// workbook path does not exist. Kept for compatibility with older deployments
// that shipped the workbook under data/.
const legacySheetPath = "data/buying_groups_legacy.xlsx"

// SheetConfig holds configuration for the buying-group workbook and the
// generated chart output directory.
type SheetConfig struct {
	Path           string
	LegacyPath     string
	ChartOutputDir string
}

// NewSheetConfig creates sheet configuration from environment variables.
// It reads SHEET_PATH (default: data/buying_groups.xlsx) and
// CHART_OUTPUT_DIR (default: generated_charts).
func NewSheetConfig() (*SheetConfig, error) {
	path := os.Getenv("SHEET_PATH")
	if path == "" {
		path = "data/buying_groups.xlsx"
	}

	outputDir := os.Getenv("CHART_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "generated_charts"
	}

	config := &SheetConfig{
		Path:           path,
		LegacyPath:     legacySheetPath,
		ChartOutputDir: outputDir,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *SheetConfig) normalize() error {
	if c.Path == "" {
		return fmt.Errorf("SHEET_PATH cannot be empty")
	}
	if c.ChartOutputDir == "" {
		return fmt.Errorf("CHART_OUTPUT_DIR cannot be empty")
	}
	return nil
}
