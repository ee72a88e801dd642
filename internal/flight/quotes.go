package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

const quoteTTL = time.Hour

// QuoteFetcher finds the cheapest flight for a single route on a single date.
type QuoteFetcher struct {
	api     *apiClient
	baseURL string
	cache   Cache
	log     *slog.Logger
}

// NewQuoteFetcher constructs a QuoteFetcher against the given flight-search
// endpoint.
func NewQuoteFetcher(baseURL, apiKey, userAgent string, cache Cache, log *slog.Logger) *QuoteFetcher {
	return &QuoteFetcher{
		api:     newAPIClient(apiKey, userAgent, log),
		baseURL: baseURL,
		cache:   cache,
		log:     log,
	}
}

type searchResponse struct {
	Data []struct {
		FlyFrom string      `json:"flyFrom"`
		FlyTo   string      `json:"flyTo"`
		Price   json.Number `json:"price"`
	} `json:"data"`
}

// cachedQuote wraps the quote so a "no route exists" outcome (nil quote)
// is cacheable and distinguishable from a cache miss.
type cachedQuote struct {
	Quote *Quote `json:"quote"`
}

func quoteKey(src, dst, date string) string {
	return fmt.Sprintf("quote:%s:%s:%s", src, dst, date)
}

// Quote returns the cheapest flight for the route, or nil with no error when
// the upstream reports no flights at all. An unreachable upstream or an HTTP
// error status is a hard failure.
func (f *QuoteFetcher) Quote(ctx context.Context, src, dst, date string) (*Quote, error) {
	key := quoteKey(src, dst, date)

	var cached cachedQuote
	hit, err := f.cache.Get(ctx, key, &cached)
	if err != nil {
		f.log.Warn("quote cache get failed", "src", src, "dst", dst, "err", err)
	}
	if hit {
		return cached.Quote, nil
	}

	params := url.Values{}
	params.Set("fly_from", src)
	params.Set("fly_to", dst)
	params.Set("date_from", date)
	params.Set("date_to", date)
	params.Set("sort", "price")
	params.Set("limit", "1")

	var resp searchResponse
	if res := f.api.fetch(ctx, f.baseURL, params, &resp); !res.ok() {
		return nil, fmt.Errorf("API returned no data for %s to %s on %s: %w", src, dst, date, ErrUpstreamUnavailable)
	}

	// limit=1 is requested but the upstream is not trusted to honor it:
	// scan for the minimum price across whatever came back.
	if len(resp.Data) == 0 {
		if err := f.cache.Set(ctx, key, cachedQuote{}, quoteTTL); err != nil {
			f.log.Warn("quote cache set failed", "src", src, "dst", dst, "err", err)
		}
		return nil, nil
	}

	cheapest := resp.Data[0]
	for _, entry := range resp.Data[1:] {
		if numericLess(entry.Price, cheapest.Price) {
			cheapest = entry
		}
	}

	q := &Quote{
		Src:   cheapest.FlyFrom,
		Dst:   cheapest.FlyTo,
		Price: cheapest.Price.String(),
	}

	if err := f.cache.Set(ctx, key, cachedQuote{Quote: q}, quoteTTL); err != nil {
		f.log.Warn("quote cache set failed", "src", src, "dst", dst, "err", err)
	}

	return q, nil
}

func numericLess(a, b json.Number) bool {
	af, errA := a.Float64()
	bf, errB := b.Float64()
	if errA != nil || errB != nil {
		return false
	}
	return af < bf
}
