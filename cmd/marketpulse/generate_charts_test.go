package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeChartsWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)
	rows := [][]string{
		{"Name", "Company Name", "Reports To", "Location"},
		{"Ada", "Acme", "", "London"},
		{"Bob", "Acme", "Ada", "London"},
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, value))
		}
	}
	path := filepath.Join(dir, "groups.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestGenerateCharts_WritesChartFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHEET_PATH", writeChartsWorkbook(t, dir))
	t.Setenv("CHART_OUTPUT_DIR", filepath.Join(dir, "charts"))

	err := runGenerateCharts(nil, []string{"Acme"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "charts", "Acme_London.html"))
}

func TestGenerateCharts_AllFlag(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHEET_PATH", writeChartsWorkbook(t, dir))
	t.Setenv("CHART_OUTPUT_DIR", filepath.Join(dir, "charts"))

	generateAll = true
	t.Cleanup(func() { generateAll = false })

	err := runGenerateCharts(nil, nil)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "charts", "Acme_London.html"))
}

func TestGenerateCharts_NoArgsWithoutAll(t *testing.T) {
	err := runGenerateCharts(nil, nil)
	assert.Error(t, err)
}
