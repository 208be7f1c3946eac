package orgchart

import (
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/marketpulse/internal/sheet"
)

// BatchReport summarizes one batch generation run.
type BatchReport struct {
	Generated int    `json:"newChartsGenerated"`
	Skipped   int    `json:"chartsSkipped"`
	Failed    int    `json:"-"`
	Message   string `json:"message"`
}

// GenerateSelected builds charts for the requested companies, skipping ones
// whose file already exists. The store listing is snapshotted once at batch
// start; writes that land during the batch are not detected. Companies run
// sequentially so log output stays ordered. A single company's failure never
// aborts the batch: unknown companies and build failures are logged and
// counted in neither bucket.
func (s *Service) GenerateSelected(companies []string) (*BatchReport, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}

	existing, err := s.store.List()
	if err != nil {
		return nil, err
	}

	report := &BatchReport{}
	for _, company := range companies {
		location, found := companyLocation(records, company)
		if !found {
			log.Printf("[batch] no rows for company %q, skipping", company)
			report.Failed++
			continue
		}

		name := Filename(company, location)
		if existing[name] {
			report.Skipped++
			continue
		}

		chart, err := Build(records, company)
		if err != nil {
			log.Printf("[batch] failed to build chart for %q: %v", company, err)
			report.Failed++
			continue
		}

		data, err := Render(chart)
		if err != nil {
			log.Printf("[batch] failed to render chart for %q: %v", company, err)
			report.Failed++
			continue
		}

		if err := s.store.Put(name, data); err != nil {
			log.Printf("[batch] failed to store chart for %q: %v", company, err)
			report.Failed++
			continue
		}
		report.Generated++
	}

	report.Message = fmt.Sprintf("%d new charts generated, %d skipped (already existed)",
		report.Generated, report.Skipped)
	if report.Failed > 0 {
		report.Message += fmt.Sprintf(", %d failed", report.Failed)
	}
	return report, nil
}

// companyLocation filters the records for the company and returns the first
// row's trimmed location, mirroring the single-chart build.
func companyLocation(records []sheet.PersonRecord, company string) (string, bool) {
	for _, r := range records {
		if r.CompanyName == company {
			return strings.TrimSpace(r.Location), true
		}
	}
	return "", false
}
