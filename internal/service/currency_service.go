package service

import (
	"sync"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CacheTTL is the freshness window for a cached rate snapshot.
const CacheTTL = 24 * time.Hour

// ReferenceCurrency is the currency all persisted amounts are stored in.
const ReferenceCurrency = "USD"

// fallbackRates is served when the provider is unreachable. It is never
// cached, so the next read retries the fetch.
var fallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"RUB": 82.5,
	"GBP": 0.79,
	"JPY": 149.5,
	"CNY": 7.28,
}

// CurrencyService owns the transient exchange-rate cache. Rates are advisory
// display data: concurrent refreshes are last-writer-wins, and persisted
// amounts stay in the reference currency regardless of cache state.
type CurrencyService struct {
	source domain.RateSource

	mu     sync.RWMutex
	cached *domain.RateSnapshot
}

// NewCurrencyService creates a CurrencyService. A nil source disables
// fetching entirely and every read serves the fallback table.
func NewCurrencyService(source domain.RateSource) *CurrencyService {
	return &CurrencyService{source: source}
}

// Rates returns the cached snapshot when it is younger than CacheTTL,
// otherwise fetches a fresh one. On fetch failure the static fallback table
// is returned without being cached.
func (s *CurrencyService) Rates() *domain.RateSnapshot {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil && time.Since(cached.FetchedAt) < CacheTTL {
		return cached
	}

	if s.source != nil {
		snapshot, err := s.source.Fetch()
		if err == nil {
			s.mu.Lock()
			s.cached = snapshot
			s.mu.Unlock()
			log.Info().Str("base", snapshot.Base).Int("currencies", len(snapshot.Rates)).Msg("Exchange rates refreshed")
			return snapshot
		}
		log.Warn().Err(err).Msg("Exchange rate fetch failed, serving fallback table")
	}

	return &domain.RateSnapshot{
		Base:      ReferenceCurrency,
		Rates:     fallbackRates,
		FetchedAt: time.Now().UTC(),
	}
}

// Refresh re-reads the rate table, warming the cache. Invoked hourly from
// the scheduler; the 24-hour staleness contract for user-triggered reads is
// unchanged.
func (s *CurrencyService) Refresh() {
	s.Rates()
}

// Convert converts an amount between two currencies by normalizing through
// the base currency. Identity when the currencies match or the amount is
// zero. A currency missing from the table is an error, never a silent zero.
func (s *CurrencyService) Convert(amount decimal.Decimal, from, to string, rates map[string]float64) (decimal.Decimal, error) {
	if from == to || amount.IsZero() {
		return amount, nil
	}

	usd := amount
	if from != ReferenceCurrency {
		rate, ok := rates[from]
		if !ok || rate == 0 {
			return decimal.Zero, domain.ErrUnknownCurrency
		}
		usd = amount.Div(decimal.NewFromFloat(rate))
	}

	if to == ReferenceCurrency {
		return usd, nil
	}
	rate, ok := rates[to]
	if !ok || rate == 0 {
		return decimal.Zero, domain.ErrUnknownCurrency
	}
	return usd.Mul(decimal.NewFromFloat(rate)), nil
}
