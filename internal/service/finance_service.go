package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/ledger"
	"github.com/nimbatransit/transit-tracker/internal/model"
	"github.com/nimbatransit/transit-tracker/internal/repository"
)

// FinanceService answers balance, report and audit queries over a
// shipment's ledger.
type FinanceService struct {
	shipmentRepo *repository.ShipmentRepository
	expenseRepo  *repository.ExpenseRepository
}

func NewFinanceService(shipmentRepo *repository.ShipmentRepository, expenseRepo *repository.ExpenseRepository) *FinanceService {
	return &FinanceService{shipmentRepo: shipmentRepo, expenseRepo: expenseRepo}
}

// load fetches the shipment and its ledger concurrently.
func (s *FinanceService) load(ctx context.Context, shipmentID string) (*model.Shipment, error) {
	var (
		shipment *model.Shipment
		expenses []model.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shipment, err = s.shipmentRepo.GetByID(gctx, shipmentID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.ListByShipment(gctx, shipmentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shipment.Expenses = expenses
	return shipment, nil
}

// Balance returns the shipment's balance together with the provisioning
// advice derived from its pending liquidation.
func (s *FinanceService) Balance(ctx context.Context, shipmentID string) (*dto.BalanceResponse, error) {
	shipment, err := s.load(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.BalanceResponse{
		Balance:              ledger.Compute(shipment.Expenses),
		ProvisionRequired:    ledger.ProvisionRequired(shipment.Expenses),
		RecommendedProvision: ledger.RecommendedProvision(shipment.Expenses),
	}
	if liq, ok := ledger.PendingLiquidation(shipment.Expenses); ok {
		liqResp := dto.NewExpenseResponse(liq)
		resp.PendingLiquidation = &liqResp
	}
	return resp, nil
}

// Report renders the plain-text financial report for a shipment.
func (s *FinanceService) Report(ctx context.Context, shipmentID string) (string, error) {
	shipment, err := s.load(ctx, shipmentID)
	if err != nil {
		return "", err
	}
	return ledger.Report(shipment), nil
}

// Audit runs the ledger integrity checks.
func (s *FinanceService) Audit(ctx context.Context, shipmentID string) (*dto.AuditResponse, error) {
	shipment, err := s.load(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	findings := ledger.Audit(shipment.Expenses)
	return &dto.AuditResponse{
		Healthy:   len(findings) == 0,
		Anomalies: findings,
	}, nil
}
