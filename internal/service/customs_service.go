package service

import (
	"context"

	"github.com/nimbatransit/transit-tracker/internal/customs"
	"github.com/nimbatransit/transit-tracker/internal/model"
)

// CustomsService turns FOB/freight/insurance triples into duty quotes
// using the current rate schedule.
type CustomsService struct {
	rates *RatesService
}

func NewCustomsService(rates *RatesService) *CustomsService {
	return &CustomsService{rates: rates}
}

// Quote is the full duty breakdown plus the schedule it was computed
// from and its staleness.
type Quote struct {
	Breakdown        customs.Breakdown
	DutiesPercentage string
	Rates            *model.CustomsRates
	RatesStale       bool
}

func (s *CustomsService) Quote(ctx context.Context, fob, freight, insurance int64) (*Quote, error) {
	rates, stale, err := s.rates.Current(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := customs.CalculateFromGNF(fob, freight, insurance, customs.NewRates(*rates))

	return &Quote{
		Breakdown:        breakdown,
		DutiesPercentage: customs.DutiesPercentage(breakdown).String(),
		Rates:            rates,
		RatesStale:       stale,
	}, nil
}
