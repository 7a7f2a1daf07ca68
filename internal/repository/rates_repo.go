package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

type RatesRepository struct {
	pool *pgxpool.Pool
}

func NewRatesRepository(pool *pgxpool.Pool) *RatesRepository {
	return &RatesRepository{pool: pool}
}

// Current returns the most recently published rate schedule.
func (r *RatesRepository) Current(ctx context.Context) (*model.CustomsRates, error) {
	var rates model.CustomsRates
	err := r.pool.QueryRow(ctx,
		`SELECT id, dd, rtl, rdl, tvs, source, last_update
		FROM customs_rates
		ORDER BY last_update DESC, id
		LIMIT 1`,
	).Scan(&rates.ID, &rates.DD, &rates.RTL, &rates.RDL, &rates.TVS, &rates.Source, &rates.LastUpdate)
	if err != nil {
		return nil, fmt.Errorf("get current rates: %w", err)
	}
	return &rates, nil
}

// Insert publishes a new rate schedule. Older schedules are kept for
// audit; Current always reads the newest.
func (r *RatesRepository) Insert(ctx context.Context, rates *model.CustomsRates) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO customs_rates (dd, rtl, rdl, tvs, source, last_update)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, last_update`,
		rates.DD, rates.RTL, rates.RDL, rates.TVS, rates.Source,
	).Scan(&rates.ID, &rates.LastUpdate)
}
