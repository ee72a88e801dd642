// Package flight implements the search pipeline: resolving countries to
// their busiest airports, fanning out one cheapest-quote lookup per airport
// pair, and sorting the results by price.
package flight

import "log/slog"

// Config holds the upstream endpoints and credentials shared by the
// location-lookup and flight-search clients.
type Config struct {
	LocationAPIURL string
	SearchAPIURL   string
	APIKey         string
	UserAgent      string
}

// New wires the full pipeline: one resolver, one quote fetcher, one
// aggregator, all sharing the given cache and logger.
func New(cfg Config, cache Cache, log *slog.Logger) *Aggregator {
	resolver := NewAirportResolver(cfg.LocationAPIURL, cfg.APIKey, cfg.UserAgent, cache, log)
	quotes := NewQuoteFetcher(cfg.SearchAPIURL, cfg.APIKey, cfg.UserAgent, cache, log)
	return NewAggregator(resolver, quotes, log)
}
