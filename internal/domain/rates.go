package domain

import "time"

// RateSnapshot is a cached exchange-rate table relative to the base
// currency. It is transient display data and is never persisted.
type RateSnapshot struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"timestamp"`
}

// RateSource fetches a fresh rate table from an external provider.
type RateSource interface {
	Fetch() (*RateSnapshot, error)
}

// Messenger delivers a single notification message to an external
// messaging endpoint.
type Messenger interface {
	Send(text string) error
}
