package market

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finview/internal/cache"
)

// DefaultExchangeRateURL is the exchangerate-api v6 endpoint.
const DefaultExchangeRateURL = "https://v6.exchangerate-api.com/v6"

// ExchangeRateClient reads conversion rates from exchangerate-api.
type ExchangeRateClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *cache.LRUCache[map[string]decimal.Decimal]
}

var _ RateFetcher = (*ExchangeRateClient)(nil)

// NewExchangeRateClient creates a client. Conversion tables are cached per
// base currency for ttl.
func NewExchangeRateClient(baseURL, apiKey string, hc *http.Client, ttl time.Duration) *ExchangeRateClient {
	if baseURL == "" {
		baseURL = DefaultExchangeRateURL
	}
	if hc == nil {
		hc = NewHTTPClient(10 * time.Second)
	}
	return &ExchangeRateClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    hc,
		cache:   cache.NewLRUCache[map[string]decimal.Decimal](16, ttl),
	}
}

// Cache exposes the conversion table cache for registration with a cleanup manager.
func (c *ExchangeRateClient) Cache() cache.Cleaner {
	return c.cache
}

// Rates returns round(1/r, 2) for each target with a conversion rate r.
// Targets the provider does not know are left out.
func (c *ExchangeRateClient) Rates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	table, err := c.cache.GetOrLoad(base, func() (map[string]decimal.Decimal, error) {
		return c.fetch(ctx, base)
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(targets))
	for _, code := range targets {
		r, ok := table[code]
		if !ok || r.IsZero() {
			continue
		}
		out[code] = decimal.NewFromInt(1).DivRound(r, 8).Round(2)
	}
	return out, nil
}

func (c *ExchangeRateClient) fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: rates request: %w", ErrProvider, err)
	}
	defer resp.Body.Close()

	var body struct {
		Result          string                     `json:"result"`
		ErrorType       string                     `json:"error-type"`
		ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode rates (status %d): %v", ErrProvider, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || body.Result == "error" {
		return nil, fmt.Errorf("%w: rates status %d %s", ErrProvider, resp.StatusCode, body.ErrorType)
	}

	slog.DebugContext(ctx, "Conversion rates fetched", "component", "market", "base", base, "rates", len(body.ConversionRates))
	return body.ConversionRates, nil
}
