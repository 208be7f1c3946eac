package orgchart

import (
	"sort"
	"strings"

	"github.com/jonathan/marketpulse/internal/sheet"
)

// Service ties the workbook to the chart store. The workbook is re-read on
// every call; rows are never cached in memory, so edits to the file show up
// on the next request.
type Service struct {
	sheetPath  string
	legacyPath string
	store      Store
}

// NewService creates a chart service over the given workbook paths and store.
func NewService(sheetPath, legacyPath string, store Store) *Service {
	return &Service{
		sheetPath:  sheetPath,
		legacyPath: legacyPath,
		store:      store,
	}
}

// Store exposes the underlying chart store.
func (s *Service) Store() Store {
	return s.store
}

func (s *Service) loadRecords() ([]sheet.PersonRecord, error) {
	rows, err := sheet.Load(s.sheetPath, s.legacyPath)
	if err != nil {
		return nil, err
	}
	return sheet.RecordsFromRows(rows), nil
}

// Chart returns the rendered chart document for a company, building and
// persisting it on a cache miss. The location-free filename is probed first
// so a cached chart for a location-less company is served without touching
// the workbook; the location-qualified name is probed once the workbook has
// been read.
func (s *Service) Chart(company string) ([]byte, error) {
	if data, ok, err := s.store.Get(Filename(company, "")); err != nil {
		return nil, err
	} else if ok {
		return data, nil
	}

	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}

	chart, err := Build(records, company)
	if err != nil {
		return nil, err
	}

	name := Filename(company, chart.Location)
	if chart.Location != "" {
		if data, ok, err := s.store.Get(name); err != nil {
			return nil, err
		} else if ok {
			return data, nil
		}
	}

	data, err := Render(chart)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(name, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Companies returns the distinct company names in first-seen row order.
func (s *Service) Companies() ([]string, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var companies []string
	for _, r := range records {
		name := strings.TrimSpace(r.CompanyName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		companies = append(companies, name)
	}
	return companies, nil
}

// Categories returns the sorted distinct non-empty category values.
func (s *Service) Categories() ([]string, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, r := range records {
		category := strings.TrimSpace(r.Category)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// PersonDetails groups every record by company name, preserving row order
// within each company.
func (s *Service) PersonDetails() (map[string][]sheet.PersonRecord, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}

	details := make(map[string][]sheet.PersonRecord)
	for _, r := range records {
		name := strings.TrimSpace(r.CompanyName)
		if name == "" {
			continue
		}
		details[name] = append(details[name], r)
	}
	return details, nil
}
