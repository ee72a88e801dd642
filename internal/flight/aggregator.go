package flight

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// airportResolver is the interface satisfied by AirportResolver.
type airportResolver interface {
	Resolve(ctx context.Context, country string) ([]string, error)
}

// quoteFetcher is the interface satisfied by QuoteFetcher.
type quoteFetcher interface {
	Quote(ctx context.Context, src, dst, date string) (*Quote, error)
}

// Aggregator expands two countries into airport sets and fans out one quote
// lookup per route in the cross-product.
type Aggregator struct {
	airports airportResolver
	quotes   quoteFetcher
	log      *slog.Logger
}

// NewAggregator constructs an Aggregator.
func NewAggregator(airports airportResolver, quotes quoteFetcher, log *slog.Logger) *Aggregator {
	return &Aggregator{airports: airports, quotes: quotes, log: log}
}

type route struct {
	src, dst string
}

// Search resolves both countries, looks up every (source, destination)
// airport pair concurrently, and returns the quotes that exist, in pair
// order (source-major). Any resolution failure or hard lookup failure aborts
// the whole search: the errgroup cancels in-flight siblings and the first
// error is returned.
func (a *Aggregator) Search(ctx context.Context, srcCountry, dstCountry, date string) ([]Quote, error) {
	srcAirports, err := a.airports.Resolve(ctx, srcCountry)
	if err != nil {
		return nil, err
	}

	dstAirports, err := a.airports.Resolve(ctx, dstCountry)
	if err != nil {
		return nil, err
	}

	routes := make([]route, 0, len(srcAirports)*len(dstAirports))
	for _, s := range srcAirports {
		for _, d := range dstAirports {
			routes = append(routes, route{src: s, dst: d})
		}
	}

	// One slot per route: goroutines write disjoint indices, so the only
	// synchronization needed is the errgroup join.
	results := make([]*Quote, len(routes))

	g, gctx := errgroup.WithContext(ctx)
	for i, rt := range routes {
		g.Go(func() error {
			q, err := a.quotes.Quote(gctx, rt.src, rt.dst, date)
			if err != nil {
				return err
			}
			results[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.log.Error("flight search aborted", "source", srcCountry, "destination", dstCountry, "err", err)
		return nil, err
	}

	quotes := make([]Quote, 0, len(results))
	for _, q := range results {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}

	a.log.Info("flight search completed",
		"source", srcCountry,
		"destination", dstCountry,
		"routes", len(routes),
		"quotes", len(quotes),
	)

	return quotes, nil
}
