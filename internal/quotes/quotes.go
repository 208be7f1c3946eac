// Package quotes provides a thin client over the upstream stock quote API.
// This package centralizes quote fetching so handlers never talk to the
// upstream directly.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout is the default upstream request timeout.
const DefaultTimeout = 10 * time.Second

// maxConcurrentFetches caps the fan-out when fetching multiple symbols.
const maxConcurrentFetches = 5

// Quote holds one symbol's latest trading figures as returned upstream.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	PreviousClose float64 `json:"previousClose"`
	Timestamp     int64   `json:"timestamp"`
}

// Error represents an error while fetching a quote.
type Error struct {
	Symbol   string
	Message  string
	NotFound bool
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("quote error for %s: %s: %v", e.Symbol, e.Message, e.Cause)
	}
	return fmt.Sprintf("quote error for %s: %s", e.Symbol, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client fetches quotes from the configured upstream.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a quote client for the given upstream base URL and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Quote fetches the latest quote for one symbol. Symbols are passed upstream
// uppercased. An upstream 404 is reported as a not-found Error.
func (c *Client) Quote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, &Error{Symbol: symbol, Message: "empty symbol", NotFound: true}
	}

	reqURL := fmt.Sprintf("%s/quote?symbol=%s", c.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Symbol: symbol, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Symbol: symbol, Message: "upstream request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Symbol: symbol, Message: "failed to read upstream response", Cause: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{Symbol: symbol, Message: "unknown symbol", NotFound: true}
	case resp.StatusCode != http.StatusOK:
		return nil, &Error{Symbol: symbol, Message: fmt.Sprintf("upstream status %d", resp.StatusCode)}
	}

	var quote Quote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, &Error{Symbol: symbol, Message: "malformed upstream response", Cause: err}
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	return &quote, nil
}

// BatchResult pairs a symbol with its outcome in a multi-symbol fetch.
type BatchResult struct {
	Quote *Quote `json:"quote,omitempty"`
	Error string `json:"error,omitempty"`
}

// Quotes fetches several symbols concurrently. Per-symbol failures are
// recorded in the result map rather than failing the batch; only context
// cancellation aborts the whole call. Results are keyed by the uppercased
// symbol.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]BatchResult, error) {
	symbols = dedupeSymbols(symbols)

	var mu sync.Mutex
	results := make(map[string]BatchResult, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, symbol := range symbols {
		g.Go(func() error {
			quote, err := c.Quote(ctx, symbol)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				results[symbol] = BatchResult{Error: err.Error()}
				return nil
			}
			results[symbol] = BatchResult{Quote: quote}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// dedupeSymbols uppercases, trims, and dedupes the requested symbols,
// returning them sorted for stable fetch order.
func dedupeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	var out []string
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
