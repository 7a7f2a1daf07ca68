package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nimbatransit/transit-tracker/internal/cache"
	"github.com/nimbatransit/transit-tracker/internal/customs"
	"github.com/nimbatransit/transit-tracker/internal/model"
	"github.com/nimbatransit/transit-tracker/internal/repository"
)

const (
	ratesCacheKey = "customs:rates:current"
	ratesCacheTTL = 15 * time.Minute
)

// RatesService provides the current customs rate schedule, fronted by
// an optional Redis read-through cache. Cache failures degrade to the
// database and are logged, never surfaced.
type RatesService struct {
	repo  *repository.RatesRepository
	cache *cache.Client
}

func NewRatesService(repo *repository.RatesRepository, cache *cache.Client) *RatesService {
	return &RatesService{repo: repo, cache: cache}
}

// Current returns the newest schedule and whether it is stale (older
// than 30 days).
func (s *RatesService) Current(ctx context.Context) (*model.CustomsRates, bool, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ratesCacheKey).Bytes(); err == nil {
			var rates model.CustomsRates
			if err := json.Unmarshal(cached, &rates); err == nil {
				return &rates, customs.NewRates(rates).Stale(time.Now()), nil
			}
		}
	}

	rates, err := s.repo.Current(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(rates); err == nil {
			if err := s.cache.Set(ctx, ratesCacheKey, payload, ratesCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache customs rates")
			}
		}
	}

	return rates, customs.NewRates(*rates).Stale(time.Now()), nil
}

// Update publishes a new schedule after bounds validation and drops
// the cached copy.
func (s *RatesService) Update(ctx context.Context, rates *model.CustomsRates) error {
	if !customs.ValidateRates(customs.NewRates(*rates)) {
		return &validationErr{field: "rates", message: "every rate must lie between 0 and 1"}
	}

	if err := s.repo.Insert(ctx, rates); err != nil {
		return fmt.Errorf("insert rates: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, ratesCacheKey).Err(); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate cached customs rates")
		}
	}

	return nil
}
