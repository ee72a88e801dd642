package api

import (
	"context"

	"github.com/skylane/flightsearch/internal/flight"
	"github.com/skylane/flightsearch/internal/storage"
)

// FlightSearcher defines the aggregation pipeline needed by handlers.
type FlightSearcher interface {
	Search(ctx context.Context, srcCountry, dstCountry, date string) ([]flight.Quote, error)
}

// SearchHistory defines the storage operations needed by handlers.
type SearchHistory interface {
	InsertSearch(ctx context.Context, rec storage.SearchRecord) error
	RecentSearches(ctx context.Context, limit int) ([]storage.SearchRecord, error)
}
