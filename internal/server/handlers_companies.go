package server

import (
	"context"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonathan/marketpulse/internal/db"
)

// CompanyStore is the subset of db operations the company handlers need.
type CompanyStore interface {
	ListCompanies(ctx context.Context, filters db.CompanyFilters) ([]db.CompanySummary, int64, error)
	GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*db.Company, error)
	GetCompanyByName(ctx context.Context, name string) (*db.Company, error)
	GetFirmographics(ctx context.Context, id primitive.ObjectID) (*db.Firmographics, error)
	GetTechnographics(ctx context.Context, id primitive.ObjectID) (*db.Technographics, error)
	GetFinancials(ctx context.Context, id primitive.ObjectID) (*db.Financials, error)
	ListIndustries(ctx context.Context) ([]string, error)
}

// handleListCompanies returns paginated company summaries with optional
// industry and name-search filters.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := db.CompanyFilters{
		Industry: query.Get("industry"),
		Search:   query.Get("search"),
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 200 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		filters.Limit = limit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			s.errorResponse(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		filters.Offset = offset
	}

	companies, total, err := s.companies.ListCompanies(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list companies")
		return
	}
	if companies == nil {
		companies = []db.CompanySummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"total":     total,
		"offset":    filters.Offset,
	})
}

// handleGetCompanyByName looks a company up by its exact name, passed as a
// query parameter to avoid clashing with the {id} route.
func (s *Server) handleGetCompanyByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	company, err := s.companies.GetCompanyByName(r.Context(), name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get company")
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleGetCompany returns a full company document by ID.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := s.companyID(w, r)
	if !ok {
		return
	}

	company, err := s.companies.GetCompanyByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get company")
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleGetFirmographics returns one company's firmographic facet.
func (s *Server) handleGetFirmographics(w http.ResponseWriter, r *http.Request) {
	id, ok := s.companyID(w, r)
	if !ok {
		return
	}

	firmographics, err := s.companies.GetFirmographics(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get firmographics")
		return
	}
	if firmographics == nil {
		s.errorResponse(w, http.StatusNotFound, "Firmographics not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, firmographics)
}

// handleGetTechnographics returns one company's technology stack facet.
func (s *Server) handleGetTechnographics(w http.ResponseWriter, r *http.Request) {
	id, ok := s.companyID(w, r)
	if !ok {
		return
	}

	technographics, err := s.companies.GetTechnographics(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get technographics")
		return
	}
	if technographics == nil {
		s.errorResponse(w, http.StatusNotFound, "Technographics not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, technographics)
}

// handleGetFinancials returns one company's financial facet.
func (s *Server) handleGetFinancials(w http.ResponseWriter, r *http.Request) {
	id, ok := s.companyID(w, r)
	if !ok {
		return
	}

	financials, err := s.companies.GetFinancials(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get financials")
		return
	}
	if financials == nil {
		s.errorResponse(w, http.StatusNotFound, "Financials not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, financials)
}

// handleListIndustries returns the distinct industries across all companies.
func (s *Server) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := s.companies.ListIndustries(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list industries")
		return
	}
	if industries == nil {
		industries = []string{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"industries": industries})
}

// companyID parses the {id} path segment as a Mongo ObjectID, writing a 400
// response on failure.
func (s *Server) companyID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return primitive.NilObjectID, false
	}
	return id, true
}
