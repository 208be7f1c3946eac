package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/marketpulse/internal/orgchart"
	"github.com/jonathan/marketpulse/internal/sheet"
)

// handleOrgChartCompanies lists the companies present in the workbook.
func (s *Server) handleOrgChartCompanies(w http.ResponseWriter, _ *http.Request) {
	companies, err := s.charts.Companies()
	if err != nil {
		s.orgChartError(w, err)
		return
	}
	if companies == nil {
		companies = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"companies": companies})
}

// handleOrgChartCategories lists the distinct buying-group categories.
func (s *Server) handleOrgChartCategories(w http.ResponseWriter, _ *http.Request) {
	categories, err := s.charts.Categories()
	if err != nil {
		s.orgChartError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": categories})
}

// handleOrgChartPersonDetails returns every workbook row grouped by company.
func (s *Server) handleOrgChartPersonDetails(w http.ResponseWriter, _ *http.Request) {
	details, err := s.charts.PersonDetails()
	if err != nil {
		s.orgChartError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, details)
}

// handleOrgChart serves the rendered chart document for one company,
// building it on a cache miss. The {companyName} path segment arrives
// percent-decoded from the router.
func (s *Server) handleOrgChart(w http.ResponseWriter, r *http.Request) {
	companyName := r.PathValue("companyName")

	data, err := s.charts.Chart(companyName)
	if err != nil {
		s.orgChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing chart response: %v", err)
	}
}

// handleGenerateCharts builds charts for a requested list of companies,
// skipping ones already on disk.
func (s *Server) handleGenerateCharts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Companies []string `json:"companies"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Companies) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "companies list is required")
		return
	}

	report, err := s.charts.GenerateSelected(req.Companies)
	if err != nil {
		s.orgChartError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, struct {
		Success bool `json:"success"`
		*orgchart.BatchReport
	}{Success: true, BatchReport: report})
}

// orgChartError maps chart service errors onto HTTP statuses: unknown
// company and a workbook absent from both configured paths are 404s,
// everything else (render or store failures) a 500.
func (s *Server) orgChartError(w http.ResponseWriter, err error) {
	var notFound *orgchart.ErrCompanyNotFound
	if errors.As(err, &notFound) {
		s.errorResponse(w, http.StatusNotFound, notFound.Error())
		return
	}

	var noWorkbook *sheet.ErrWorkbookNotFound
	if errors.As(err, &noWorkbook) {
		log.Printf("[org-chart] workbook missing: %v", err)
		s.errorResponse(w, http.StatusNotFound, "Workbook not available")
		return
	}

	log.Printf("[org-chart] %v", err)
	s.errorResponse(w, http.StatusInternalServerError, "Failed to build chart")
}
