package orgchart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newTestService writes a workbook with the given rows and returns a service
// over it with a filesystem store in a temp directory.
func newTestService(t *testing.T, rows [][]string) (*Service, string) {
	t.Helper()

	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, value))
		}
	}
	workbook := filepath.Join(dir, "groups.xlsx")
	require.NoError(t, f.SaveAs(workbook))

	chartDir := filepath.Join(dir, "charts")
	store, err := NewFSStore(chartDir)
	require.NoError(t, err)

	return NewService(workbook, filepath.Join(dir, "legacy.xlsx"), store), chartDir
}

var defaultRows = [][]string{
	{"Unique ID", "Name", "Designation", "Reports To", "Category", "Company Name", "Location"},
	{"1", "Ada", "CTO", "", "Decision Maker", "Acme", "London"},
	{"2", "Bob", "Engineer", "1", "Influencer", "Acme", "London"},
	{"3", "Zed", "CEO", "", "", "Globex", ""},
}

func TestFSStore_MissThenHit(t *testing.T) {
	store, err := NewFSStore(filepath.Join(t.TempDir(), "charts"))
	require.NoError(t, err)

	_, ok, err := store.Get("Acme.html")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put("Acme.html", []byte("<html></html>")))

	data, ok, err := store.Get("Acme.html")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("<html></html>"), data)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"Acme.html": true}, names)
}

func TestService_ChartWritesFile(t *testing.T) {
	svc, chartDir := newTestService(t, defaultRows)

	data, err := svc.Chart("Acme")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada")

	stored, err := os.ReadFile(filepath.Join(chartDir, "Acme_London.html"))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestService_SecondFetchIsByteIdentical(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	first, err := svc.Chart("Acme")
	require.NoError(t, err)

	second, err := svc.Chart("Acme")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_CacheHitSkipsWorkbook(t *testing.T) {
	svc, chartDir := newTestService(t, defaultRows)
	cached := []byte("<html>cached</html>")
	require.NoError(t, os.WriteFile(filepath.Join(chartDir, "Zed.html"), cached, 0o644))

	// The workbook has no company named Zed, so a served chart proves the
	// store answered before the workbook was consulted.
	data, err := svc.Chart("Zed")
	require.NoError(t, err)
	assert.Equal(t, cached, data)
}

func TestService_UnknownCompany(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	_, err := svc.Chart("Initech")
	var notFound *ErrCompanyNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestService_Companies(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	companies, err := svc.Companies()
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, companies)
}

func TestService_Categories(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Decision Maker", "Influencer"}, categories)
}

func TestService_PersonDetails(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	details, err := svc.PersonDetails()
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.Len(t, details["Acme"], 2)
	assert.Equal(t, "Ada", details["Acme"][0].Name)
	assert.Equal(t, "Bob", details["Acme"][1].Name)
}

func TestGenerateSelected_SkipsExisting(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	_, err := svc.Chart("Acme")
	require.NoError(t, err)

	report, err := svc.GenerateSelected([]string{"Acme"})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Generated)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "0 new charts generated, 1 skipped (already existed)", report.Message)
}

func TestGenerateSelected_GeneratesMissing(t *testing.T) {
	svc, chartDir := newTestService(t, defaultRows)

	report, err := svc.GenerateSelected([]string{"Acme", "Globex"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Generated)
	assert.Equal(t, 0, report.Skipped)

	assert.FileExists(t, filepath.Join(chartDir, "Acme_London.html"))
	assert.FileExists(t, filepath.Join(chartDir, "Globex.html"))
}

func TestGenerateSelected_UnknownCompanyCountsInNeitherBucket(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	report, err := svc.GenerateSelected([]string{"Initech"})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Generated)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Message, "1 failed")
}

func TestGenerateSelected_MixedBatchContinuesPastFailure(t *testing.T) {
	svc, _ := newTestService(t, defaultRows)

	report, err := svc.GenerateSelected([]string{"Initech", "Acme"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Generated)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 1, report.Failed)
}
