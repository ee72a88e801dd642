package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SearchRecord is one completed flight search.
type SearchRecord struct {
	ID                 int64     `json:"id"`
	SourceCountry      string    `json:"source_country"`
	DestinationCountry string    `json:"destination_country"`
	DepartureDate      string    `json:"departure_date"`
	QuoteCount         int       `json:"quote_count"`
	CheapestPrice      *string   `json:"cheapest_price,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Querier abstracts the subset of pgxpool.Pool used by Repository, so tests
// can inject a fake.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository records completed searches and serves the recent-search list.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// InsertSearch records one completed search.
func (r *Repository) InsertSearch(ctx context.Context, rec SearchRecord) error {
	const q = `
		INSERT INTO searches (source_country, destination_country, departure_date, quote_count, cheapest_price)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.Exec(ctx, q,
		rec.SourceCountry,
		rec.DestinationCountry,
		rec.DepartureDate,
		rec.QuoteCount,
		rec.CheapestPrice,
	)
	if err != nil {
		return fmt.Errorf("inserting search %s-%s: %w", rec.SourceCountry, rec.DestinationCountry, err)
	}

	return nil
}

// RecentSearches returns the newest records, up to limit.
func (r *Repository) RecentSearches(ctx context.Context, limit int) ([]SearchRecord, error) {
	const q = `
		SELECT id, source_country, destination_country, departure_date, quote_count, cheapest_price, created_at
		FROM searches
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent searches: %w", err)
	}
	defer rows.Close()

	var results []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.SourceCountry,
			&rec.DestinationCountry,
			&rec.DepartureDate,
			&rec.QuoteCount,
			&rec.CheapestPrice,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search rows: %w", err)
	}

	return results, nil
}
