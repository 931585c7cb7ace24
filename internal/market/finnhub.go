package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finview/internal/cache"
)

// DefaultFinnhubURL is the Finnhub REST API root.
const DefaultFinnhubURL = "https://finnhub.io/api/v1"

// FinnhubClient reads current stock prices from the Finnhub quote endpoint.
type FinnhubClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *cache.LRUCache[quote]
}

type quote struct {
	price decimal.Decimal
	ok    bool
}

var _ PriceFetcher = (*FinnhubClient)(nil)

func NewFinnhubClient(baseURL, apiKey string, hc *http.Client, ttl time.Duration) *FinnhubClient {
	if baseURL == "" {
		baseURL = DefaultFinnhubURL
	}
	if hc == nil {
		hc = NewHTTPClient(10 * time.Second)
	}
	return &FinnhubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    hc,
		cache:   cache.NewLRUCache[quote](256, ttl),
	}
}

// Cache exposes the quote cache for registration with a cleanup manager.
func (c *FinnhubClient) Cache() cache.Cleaner {
	return c.cache
}

// Prices fetches the current price ("c") of each symbol, one request per
// symbol. Symbols whose quote carries no price are left out.
func (c *FinnhubClient) Prices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(symbols))
	for _, s := range symbols {
		q, err := c.cache.GetOrLoad(s, func() (quote, error) {
			return c.fetch(ctx, s)
		})
		if err != nil {
			return nil, err
		}
		if q.ok {
			out[s] = q.price
		}
	}
	return out, nil
}

func (c *FinnhubClient) fetch(ctx context.Context, symbol string) (quote, error) {
	q := url.Values{"symbol": {symbol}, "token": {c.apiKey}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quote?"+q.Encode(), nil)
	if err != nil {
		return quote{}, fmt.Errorf("build quote request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return quote{}, fmt.Errorf("%w: quote %s: %w", ErrProvider, symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return quote{}, fmt.Errorf("%w: quote %s status %d", ErrProvider, symbol, resp.StatusCode)
	}

	var body struct {
		Current *decimal.Decimal `json:"c"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return quote{}, fmt.Errorf("%w: decode quote %s: %v", ErrProvider, symbol, err)
	}
	if body.Current == nil {
		return quote{}, nil
	}
	return quote{price: *body.Current, ok: true}, nil
}
