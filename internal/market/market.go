// Package market fetches currency rates and stock quotes for the home page.
package market

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Ports consumed by the home page assembly.
type (
	// RateFetcher returns, for each target currency known to the provider,
	// the price of one unit of it in the base currency.
	RateFetcher interface {
		Rates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error)
	}

	// PriceFetcher returns the last price of each known ticker symbol.
	PriceFetcher interface {
		Prices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	}
)

// ErrProvider reports a failed or unusable provider response.
var ErrProvider = errors.New("market provider error")

// NewHTTPClient returns an HTTP client with connection pooling and the given
// overall request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}
