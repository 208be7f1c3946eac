package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/marketpulse/internal/quotes"
)

// maxQuoteBatch caps how many symbols one batch request may name.
const maxQuoteBatch = 25

// QuoteFetcher is the quote client surface the handlers need.
type QuoteFetcher interface {
	Quote(ctx context.Context, symbol string) (*quotes.Quote, error)
	Quotes(ctx context.Context, symbols []string) (map[string]quotes.BatchResult, error)
}

// handleGetQuote proxies a single symbol quote from the upstream API.
func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")

	quote, err := s.quotes.Quote(r.Context(), symbol)
	if err != nil {
		var quoteErr *quotes.Error
		if errors.As(err, &quoteErr) && quoteErr.NotFound {
			s.errorResponse(w, http.StatusNotFound, "Unknown symbol: "+strings.ToUpper(strings.TrimSpace(symbol)))
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch quote")
		return
	}

	s.jsonResponse(w, http.StatusOK, quote)
}

// handleGetQuotes fetches several symbols at once. Per-symbol failures are
// reported inline so one bad ticker does not fail the batch.
func (s *Server) handleGetQuotes(w http.ResponseWriter, r *http.Request) {
	symbolsParam := r.URL.Query().Get("symbols")
	if symbolsParam == "" {
		s.errorResponse(w, http.StatusBadRequest, "symbols query parameter is required")
		return
	}

	var symbols []string
	for _, symbol := range strings.Split(symbolsParam, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "symbols query parameter is required")
		return
	}
	if len(symbols) > maxQuoteBatch {
		s.errorResponse(w, http.StatusBadRequest, "too many symbols requested")
		return
	}

	results, err := s.quotes.Quotes(r.Context(), symbols)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"quotes": results})
}
