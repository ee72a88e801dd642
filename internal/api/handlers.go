package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/skylane/flightsearch/internal/flight"
	"github.com/skylane/flightsearch/internal/storage"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	searcher FlightSearcher
	history  SearchHistory
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(searcher FlightSearcher, history SearchHistory, log *slog.Logger) *Handlers {
	return &Handlers{
		searcher: searcher,
		history:  history,
		log:      log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// SearchFlights handles GET /api/v1/search-flights.
// Resolves both countries to their top-3 airports, quotes every airport
// pair, and returns the quotes sorted ascending by price.
func (h *Handlers) SearchFlights(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("source_country")
	dst := r.URL.Query().Get("destination_country")
	date := r.URL.Query().Get("departure_date")

	if src == "" || dst == "" || date == "" {
		writeError(w, http.StatusBadRequest, "source_country, destination_country and departure_date are required")
		return
	}
	if !flight.IsValidDate(date) {
		writeError(w, http.StatusBadRequest, "departure_date must be a valid DD-MM-YYYY date")
		return
	}

	quotes, err := h.searcher.Search(r.Context(), src, dst, date)
	if err != nil {
		switch {
		case errors.Is(err, flight.ErrUpstreamUnavailable), errors.Is(err, flight.ErrNoAirportData):
			h.log.Error("flight search failed", "source", src, "destination", dst, "err", err)
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.log.Error("unexpected search failure", "source", src, "destination", dst, "err", err)
			writeError(w, http.StatusInternalServerError, "an unexpected error occurred: "+err.Error())
		}
		return
	}

	sorted, err := flight.SortByPrice(quotes)
	if err != nil {
		h.log.Error("sorting flights failed", "source", src, "destination", dst, "err", err)
		writeError(w, http.StatusInternalServerError, "error occurred while sorting flights")
		return
	}

	h.recordSearch(r.Context(), src, dst, date, sorted)

	writeJSON(w, http.StatusOK, sorted)
}

// recordSearch stores the completed search, best-effort: a storage failure
// never fails the response.
func (h *Handlers) recordSearch(ctx context.Context, src, dst, date string, sorted []flight.Quote) {
	rec := storage.SearchRecord{
		SourceCountry:      src,
		DestinationCountry: dst,
		DepartureDate:      date,
		QuoteCount:         len(sorted),
	}
	if len(sorted) > 0 {
		rec.CheapestPrice = &sorted[0].Price
	}
	if err := h.history.InsertSearch(ctx, rec); err != nil {
		h.log.Warn("recording search failed", "source", src, "destination", dst, "err", err)
	}
}

// RecentSearches handles GET /api/v1/searches/recent.
func (h *Handlers) RecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRecentLimit)
	}

	records, err := h.history.RecentSearches(r.Context(), limit)
	if err != nil {
		h.log.Error("listing recent searches failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if records == nil {
		records = []storage.SearchRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity; 200 when both respond, 503 otherwise.
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
