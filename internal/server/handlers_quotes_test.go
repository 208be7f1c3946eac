package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/marketpulse/internal/quotes"
)

func TestHandleGetQuote(t *testing.T) {
	s, _, fetcher, _ := newTestServer(t)
	fetcher.quotes["AAPL"] = &quotes.Quote{Symbol: "AAPL", Price: 231.5}

	rec := doRequest(t, s, "GET", "/stocks/quote/AAPL", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var quote quotes.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, 231.5, quote.Price)
}

func TestHandleGetQuote_UnknownSymbol(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec := doRequest(t, s, "GET", "/stocks/quote/NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOPE")
}

func TestHandleGetQuote_UpstreamFailure(t *testing.T) {
	s, _, fetcher, _ := newTestServer(t)
	fetcher.err = fmt.Errorf("upstream down")

	rec := doRequest(t, s, "GET", "/stocks/quote/AAPL", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleGetQuotes(t *testing.T) {
	s, _, fetcher, _ := newTestServer(t)
	fetcher.quotes["AAPL"] = &quotes.Quote{Symbol: "AAPL", Price: 231.5}
	fetcher.quotes["MSFT"] = &quotes.Quote{Symbol: "MSFT", Price: 512.1}

	rec := doRequest(t, s, "GET", "/stocks/quotes?symbols=AAPL,MSFT,NOPE", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Quotes map[string]quotes.BatchResult `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Quotes, 3)
	assert.Equal(t, 231.5, body.Quotes["AAPL"].Quote.Price)
	assert.NotEmpty(t, body.Quotes["NOPE"].Error)
}

func TestHandleGetQuotes_MissingParam(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec := doRequest(t, s, "GET", "/stocks/quotes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, "GET", "/stocks/quotes?symbols=,,", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetQuotes_TooMany(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	symbols := ""
	for i := 0; i < 30; i++ {
		if i > 0 {
			symbols += ","
		}
		symbols += fmt.Sprintf("S%d", i)
	}

	rec := doRequest(t, s, "GET", "/stocks/quotes?symbols="+symbols, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
