package flight

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// Cache is the key-value store consulted before issuing upstream calls.
// Implemented by the redis-backed cache package; read failures are treated
// as misses so a degraded cache never fails a search.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}

// Airport resolutions change rarely; route prices change hourly.
const airportTTL = 24 * time.Hour

// AirportResolver resolves a country code to its top-3 airports by
// popularity, as ranked by the location-lookup API.
type AirportResolver struct {
	api     *apiClient
	baseURL string
	cache   Cache
	log     *slog.Logger
}

// NewAirportResolver constructs an AirportResolver against the given
// location-lookup endpoint.
func NewAirportResolver(baseURL, apiKey, userAgent string, cache Cache, log *slog.Logger) *AirportResolver {
	return &AirportResolver{
		api:     newAPIClient(apiKey, userAgent, log),
		baseURL: baseURL,
		cache:   cache,
		log:     log,
	}
}

type locationResponse struct {
	Locations []struct {
		Code string `json:"code"`
	} `json:"locations"`
}

func airportKey(country string) string {
	return "airports:" + strings.ToUpper(strings.TrimSpace(country))
}

// Resolve returns up to 3 airport codes for the country, in the upstream's
// popularity order. A missing code field yields "" rather than an error.
func (r *AirportResolver) Resolve(ctx context.Context, country string) ([]string, error) {
	key := airportKey(country)

	var cached []string
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.log.Warn("airport cache get failed", "country", country, "err", err)
	}
	if hit {
		return cached, nil
	}

	params := url.Values{}
	params.Set("term", country)
	params.Set("location_types", "airport")
	params.Set("sort", "-dst_popularity_score")
	params.Set("limit", "3")

	var resp locationResponse
	if res := r.api.fetch(ctx, r.baseURL, params, &resp); !res.ok() {
		return nil, fmt.Errorf("no data received from the API for country %s: %w", country, ErrUpstreamUnavailable)
	}

	if len(resp.Locations) == 0 {
		return nil, fmt.Errorf("no airport data found for country %s: %w", country, ErrNoAirportData)
	}

	codes := make([]string, 0, len(resp.Locations))
	for _, loc := range resp.Locations {
		codes = append(codes, loc.Code)
	}

	if err := r.cache.Set(ctx, key, codes, airportTTL); err != nil {
		r.log.Warn("airport cache set failed", "country", country, "err", err)
	}

	return codes, nil
}
