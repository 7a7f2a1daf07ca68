package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/ledger"
	"github.com/nimbatransit/transit-tracker/internal/model"
	"github.com/nimbatransit/transit-tracker/internal/repository"
)

// ErrAlreadyPaid is returned when a payment targets an expense that has
// already been settled.
var ErrAlreadyPaid = errors.New("expense already paid")

type ExpenseService struct {
	expenseRepo  *repository.ExpenseRepository
	shipmentRepo *repository.ShipmentRepository
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, shipmentRepo *repository.ShipmentRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, shipmentRepo: shipmentRepo}
}

// Add appends an expense to a shipment's ledger. The shipment must
// exist; the expense date defaults to now when omitted.
func (s *ExpenseService) Add(ctx context.Context, shipmentID string, req *dto.AddExpenseRequest) (*model.Expense, error) {
	if _, err := s.shipmentRepo.GetByID(ctx, shipmentID); err != nil {
		return nil, err
	}

	expenseDate := req.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	expense := &model.Expense{
		ShipmentID:  shipmentID,
		Description: req.Description,
		Amount:      req.Amount,
		Paid:        req.Paid,
		Category:    req.Category,
		Type:        model.ExpenseType(req.Type),
		ExpenseDate: expenseDate,
	}

	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// MarkPaid settles a single expense. Distinguishes a missing expense
// from one that was already paid.
func (s *ExpenseService) MarkPaid(ctx context.Context, id string) (*model.Expense, error) {
	expense, err := s.expenseRepo.MarkPaid(ctx, id)
	if err == nil {
		return expense, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	exists, existsErr := s.expenseRepo.Exists(ctx, id)
	if existsErr != nil {
		return nil, existsErr
	}
	if exists {
		return nil, ErrAlreadyPaid
	}
	return nil, pgx.ErrNoRows
}

// PayLiquidation attempts to settle the shipment's pending customs
// liquidation from its provision balance. The ledger decides; this only
// applies the side effect when payment is authorized.
func (s *ExpenseService) PayLiquidation(ctx context.Context, shipmentID string) (ledger.PaymentDecision, *model.Expense, error) {
	if _, err := s.shipmentRepo.GetByID(ctx, shipmentID); err != nil {
		return ledger.PaymentDecision{}, nil, err
	}

	expenses, err := s.expenseRepo.ListByShipment(ctx, shipmentID)
	if err != nil {
		return ledger.PaymentDecision{}, nil, err
	}

	decision := ledger.CanPayLiquidation(expenses)
	if !decision.Authorized {
		return decision, nil, nil
	}

	liq, _ := ledger.PendingLiquidation(expenses)
	paid, err := s.expenseRepo.MarkPaid(ctx, liq.ID)
	if err != nil {
		return ledger.PaymentDecision{}, nil, err
	}

	return decision, paid, nil
}
