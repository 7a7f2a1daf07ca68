package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/nimbatransit/transit-tracker/internal/identifier"
	"github.com/nimbatransit/transit-tracker/internal/model"
)

type seedExpense struct {
	Description string
	Amount      int64
	Paid        bool
	Category    string
	Type        model.ExpenseType
}

type seedShipment struct {
	ClientName    string
	BLNumber      string
	Container     string
	ShippingLine  string
	Regime        string
	FOBValue      int64
	FreightCost   int64
	InsuranceCost int64
	Status        string
	Expenses      []seedExpense
}

// Demo dossiers covering the interesting ledger states: fully funded,
// waiting on a provision top-up, and freshly opened.
var seedShipments = []seedShipment{
	{
		ClientName:   "Société Minière de Boké",
		BLNumber:     "MAEU123456789",
		Container:    "MSCU1234566",
		ShippingLine: identifier.LineMaersk,
		Regime:       identifier.RegimeImport,
		FOBValue:     250_000_000, FreightCost: 18_000_000, InsuranceCost: 2_500_000,
		Status: "DEDOUANEMENT",
		Expenses: []seedExpense{
			{"Provision initiale", 80_000_000, true, "Provision", model.ExpenseProvision},
			{"Acconage au port de Conakry", 6_500_000, true, "Transport", model.ExpenseDisbursement},
			{"Liquidation douanière", 52_000_000, false, model.CategoryCustoms, model.ExpenseDisbursement},
			{"Honoraires de transit", 4_000_000, false, "Honoraires", model.ExpenseFee},
		},
	},
	{
		ClientName:   "Import Diallo et Frères",
		BLNumber:     "MSCU987654321",
		Container:    "CSQU3054383",
		ShippingLine: identifier.LineMSC,
		Regime:       identifier.RegimeImport,
		FOBValue:     45_000_000, FreightCost: 5_200_000, InsuranceCost: 800_000,
		Status: "EN_ATTENTE_PROVISION",
		Expenses: []seedExpense{
			{"Provision initiale", 5_000_000, true, "Provision", model.ExpenseProvision},
			{"Liquidation douanière", 14_500_000, false, model.CategoryCustoms, model.ExpenseDisbursement},
		},
	},
	{
		ClientName:   "Entreprise Camara Transit",
		BLNumber:     "HLCU456789123",
		ShippingLine: identifier.LineHapagLloyd,
		Regime:       identifier.RegimeTransit,
		FOBValue:     12_000_000, FreightCost: 1_500_000, InsuranceCost: 300_000,
		Status: "EN_TRANSIT",
	},
}

// SeedData loads the demo rate schedule and dossiers. Idempotent: a
// non-empty customs_rates table means seeding already happened.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM customs_rates").Scan(&count); err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Current DGD schedule: droit de douane 20%, RTL 2%, RDL 2%, TVS 18%.
	_, err = tx.Exec(ctx,
		`INSERT INTO customs_rates (dd, rtl, rdl, tvs, source, last_update)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		0.20, 0.02, 0.02, 0.18, "DGD Conakry", time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert customs rates: %w", err)
	}
	log.Info().Msg("inserted customs rate schedule")

	for _, s := range seedShipments {
		tracking, err := identifier.GenerateTrackingNumber(s.Regime)
		if err != nil {
			return fmt.Errorf("generate tracking for %s: %w", s.ClientName, err)
		}

		shipmentID := uuid.NewString()
		_, err = tx.Exec(ctx,
			`INSERT INTO shipments (id, tracking_number, bl_number, container_number, client_name, shipping_line, regime, fob_value, freight_cost, insurance_cost, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			shipmentID, tracking, s.BLNumber, nullIfEmpty(s.Container), s.ClientName, s.ShippingLine,
			s.Regime, s.FOBValue, s.FreightCost, s.InsuranceCost, s.Status)
		if err != nil {
			return fmt.Errorf("insert shipment %s: %w", s.ClientName, err)
		}

		for i, e := range s.Expenses {
			_, err = tx.Exec(ctx,
				`INSERT INTO expenses (id, shipment_id, description, amount, paid, category, type, expense_date)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				uuid.NewString(), shipmentID, e.Description, e.Amount, e.Paid, e.Category, e.Type,
				time.Now().UTC().AddDate(0, 0, -len(s.Expenses)+i))
			if err != nil {
				return fmt.Errorf("insert expense %q: %w", e.Description, err)
			}
		}
	}
	log.Info().Int("count", len(seedShipments)).Msg("inserted demo shipments")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Msg("seed data generation complete")
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
