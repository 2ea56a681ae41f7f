package exchange

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
)

// FetchTimeout bounds the outbound call so a slow provider cannot hang a
// refresh indefinitely.
const FetchTimeout = 10 * time.Second

// HTTPRateSource implements domain.RateSource against a JSON rate provider
// returning {"rates": {CODE: number}, "base": string}.
type HTTPRateSource struct {
	url    string
	client *http.Client
}

// NewHTTPRateSource creates a rate source for the given provider URL
func NewHTTPRateSource(url string) *HTTPRateSource {
	return &HTTPRateSource{
		url:    url,
		client: &http.Client{Timeout: FetchTimeout},
	}
}

type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
	Base  string             `json:"base"`
}

// Fetch retrieves the current rate table from the provider
func (s *HTTPRateSource) Fetch() (*domain.RateSnapshot, error) {
	resp, err := s.client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rate payload: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rate provider returned empty table")
	}

	return &domain.RateSnapshot{
		Base:      payload.Base,
		Rates:     payload.Rates,
		FetchedAt: time.Now().UTC(),
	}, nil
}
