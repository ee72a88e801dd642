package flight

import "errors"

// Sentinel errors matched with errors.Is at the HTTP boundary.
var (
	// ErrUpstreamUnavailable means an upstream API returned no data:
	// transport failure and HTTP error status are treated the same way.
	ErrUpstreamUnavailable = errors.New("upstream API returned no data")

	// ErrNoAirportData means a country resolved to zero airports.
	ErrNoAirportData = errors.New("no airport data found")

	// ErrBadPriceData means a quote's price could not be parsed for sorting.
	ErrBadPriceData = errors.New("unparsable price data")
)
