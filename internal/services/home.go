// Package services assembles the summary views from the ledger, the user
// settings and the market data providers.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/market"
	"finview/internal/settings"
	"finview/internal/sheets"
)

type (
	// CurrencyRate is the price of one unit of Currency in the base currency.
	CurrencyRate struct {
		Currency string
		Rate     decimal.Decimal
	}

	StockPrice struct {
		Stock string
		Price decimal.Decimal
	}

	// HomePage is the digest shown for a reference moment.
	HomePage struct {
		Greeting        string                `json:"greeting"`
		Cards           []core.CardSummary    `json:"cards"`
		TopTransactions []core.TopTransaction `json:"top_transactions"`
		CurrencyRates   []CurrencyRate        `json:"currency_rates"`
		StockPrices     []StockPrice          `json:"stock_prices"`
	}
)

func (r CurrencyRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Currency string      `json:"currency"`
		Rate     json.Number `json:"rate"`
	}{r.Currency, json.Number(r.Rate.String())})
}

func (p StockPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Stock string      `json:"stock"`
		Price json.Number `json:"price"`
	}{p.Stock, json.Number(p.Price.String())})
}

// HomeService builds the home page digest
type HomeService struct {
	ledger   sheets.LedgerReader
	settings settings.Source
	rates    market.RateFetcher
	prices   market.PriceFetcher
	base     string
	logger   *log.Logger
	now      func() time.Time
}

func NewHomeService(ledger sheets.LedgerReader, src settings.Source, rates market.RateFetcher, prices market.PriceFetcher, base string, logger *log.Logger) *HomeService {
	return &HomeService{
		ledger:   ledger,
		settings: src,
		rates:    rates,
		prices:   prices,
		base:     base,
		logger:   logger.WithComponent(log.ComponentHome),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used when no reference date is given.
func (s *HomeService) WithClock(now func() time.Time) *HomeService {
	s.now = now
	return s
}

// Home builds the digest for ref ("YYYY-MM-DD HH:MM:SS"); an empty ref means now.
// Card totals and top payments cover the day trailing ref. Rates and prices
// are fetched concurrently and listed in settings order.
func (s *HomeService) Home(ctx context.Context, ref string) (HomePage, error) {
	if ref == "" {
		ref = s.now().Format(core.ReferenceLayout)
	}
	at, err := core.ParseReference(ref)
	if err != nil {
		return HomePage{}, err
	}

	l, err := s.ledger.ReadLedger(ctx)
	if err != nil {
		return HomePage{}, fmt.Errorf("load ledger: %w", err)
	}
	day, err := core.FilterByDate(l, ref)
	if err != nil {
		return HomePage{}, fmt.Errorf("filter by date: %w", err)
	}
	cards, err := core.AggregateByCard(day)
	if err != nil {
		return HomePage{}, fmt.Errorf("aggregate cards: %w", err)
	}
	top, err := core.TopN(day, core.DefaultTopN)
	if err != nil {
		return HomePage{}, fmt.Errorf("top transactions: %w", err)
	}

	us, err := s.settings.Settings()
	if err != nil {
		return HomePage{}, fmt.Errorf("load settings: %w", err)
	}
	rates, prices, err := s.market(ctx, us)
	if err != nil {
		return HomePage{}, err
	}

	page := HomePage{
		Greeting:        core.Greeting(at),
		Cards:           cards,
		TopTransactions: top,
		CurrencyRates:   make([]CurrencyRate, 0, len(us.Currencies)),
		StockPrices:     make([]StockPrice, 0, len(us.Stocks)),
	}
	if page.Cards == nil {
		page.Cards = []core.CardSummary{}
	}
	if page.TopTransactions == nil {
		page.TopTransactions = []core.TopTransaction{}
	}
	for _, c := range us.Currencies {
		if r, ok := rates[c]; ok {
			page.CurrencyRates = append(page.CurrencyRates, CurrencyRate{Currency: c, Rate: r})
		}
	}
	for _, sym := range us.Stocks {
		if p, ok := prices[sym]; ok {
			page.StockPrices = append(page.StockPrices, StockPrice{Stock: sym, Price: p})
		}
	}

	s.logger.InfoContext(ctx, "Home page assembled",
		log.FieldReferenceDate, ref,
		log.FieldRecords, day.Len(),
		log.FieldCards, len(page.Cards),
		log.FieldCurrencies, len(page.CurrencyRates),
		log.FieldStocks, len(page.StockPrices),
	)
	return page, nil
}

func (s *HomeService) market(ctx context.Context, us settings.Settings) (map[string]decimal.Decimal, map[string]decimal.Decimal, error) {
	var rates, prices map[string]decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	if len(us.Currencies) > 0 {
		g.Go(func() error {
			r, err := s.rates.Rates(gctx, s.base, us.Currencies)
			if err != nil {
				return fmt.Errorf("currency rates: %w", err)
			}
			rates = r
			return nil
		})
	}
	if len(us.Stocks) > 0 {
		g.Go(func() error {
			p, err := s.prices.Prices(gctx, us.Stocks)
			if err != nil {
				return fmt.Errorf("stock prices: %w", err)
			}
			prices = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Market data fetch failed", log.FieldOperation, log.OpFetch, log.FieldError, err)
		return nil, nil, err
	}
	return rates, prices, nil
}
