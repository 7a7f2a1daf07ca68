package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

// ExpenseRepository persists ledger entries. Expenses are append-only:
// there is no delete, and paid can only move from false to true.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func (r *ExpenseRepository) Insert(ctx context.Context, e *model.Expense) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO expenses (shipment_id, description, amount, paid, category, type, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		e.ShipmentID, e.Description, e.Amount, e.Paid, e.Category, e.Type, e.ExpenseDate,
	).Scan(&e.ID, &e.CreatedAt)
}

// ListByShipment returns the shipment's ledger in insertion order,
// which is the order the liquidation lookup depends on.
func (r *ExpenseRepository) ListByShipment(ctx context.Context, shipmentID string) ([]model.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, shipment_id, description, amount, paid, category, type, expense_date, created_at
		FROM expenses
		WHERE shipment_id = $1
		ORDER BY created_at, id`,
		shipmentID)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		err := rows.Scan(&e.ID, &e.ShipmentID, &e.Description, &e.Amount, &e.Paid,
			&e.Category, &e.Type, &e.ExpenseDate, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

// MarkPaid flips an unpaid expense to paid. Returns pgx.ErrNoRows when
// the expense does not exist or is already paid.
func (r *ExpenseRepository) MarkPaid(ctx context.Context, id string) (*model.Expense, error) {
	var e model.Expense
	err := r.pool.QueryRow(ctx,
		`UPDATE expenses SET paid = TRUE
		WHERE id = $1 AND paid = FALSE
		RETURNING id, shipment_id, description, amount, paid, category, type, expense_date, created_at`,
		id,
	).Scan(&e.ID, &e.ShipmentID, &e.Description, &e.Amount, &e.Paid,
		&e.Category, &e.Type, &e.ExpenseDate, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("mark expense paid: %w", err)
	}
	return &e, nil
}

// Exists reports whether an expense row exists at all, letting callers
// tell "not found" apart from "already paid".
func (r *ExpenseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM expenses WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check expense: %w", err)
	}
	return exists, nil
}
