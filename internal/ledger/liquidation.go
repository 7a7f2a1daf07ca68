package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

// provisionSafetyMargin pads recommended provisions by 10% so a single
// top-up covers the liquidation plus incidental fees.
var provisionSafetyMargin = decimal.RequireFromString("1.10")

// PendingLiquidation returns the first unpaid customs disbursement in
// list order. Shipments are expected to carry at most one; if several
// exist the earliest entry wins.
func PendingLiquidation(expenses []model.Expense) (model.Expense, bool) {
	for _, e := range expenses {
		if e.Category == model.CategoryCustoms && e.Type == model.ExpenseDisbursement && !e.Paid {
			return e, true
		}
	}
	return model.Expense{}, false
}

// PaymentDecision is the outcome of a liquidation payment check.
// RequiredAmount is the shortfall when the balance does not cover the
// liquidation.
type PaymentDecision struct {
	Authorized     bool   `json:"authorized"`
	Message        string `json:"message"`
	RequiredAmount int64  `json:"required_amount,omitempty"`
}

// CanPayLiquidation decides whether the pending customs liquidation can
// be paid from the current balance.
func CanPayLiquidation(expenses []model.Expense) PaymentDecision {
	liq, ok := PendingLiquidation(expenses)
	if !ok {
		return PaymentDecision{Message: "Aucune liquidation douanière en attente"}
	}

	balance := Compute(expenses).Balance
	if balance >= liq.Amount {
		return PaymentDecision{
			Authorized: true,
			Message:    fmt.Sprintf("Paiement autorisé: le solde de %s couvre la liquidation de %s", FormatGNF(balance), FormatGNF(liq.Amount)),
		}
	}

	shortfall := liq.Amount - balance
	return PaymentDecision{
		Message:        fmt.Sprintf("Provision insuffisante: il manque %s pour régler la liquidation de %s", FormatGNF(shortfall), FormatGNF(liq.Amount)),
		RequiredAmount: shortfall,
	}
}

// ProvisionRequired reports whether the pending liquidation, if any,
// exceeds the current balance.
func ProvisionRequired(expenses []model.Expense) bool {
	liq, ok := PendingLiquidation(expenses)
	if !ok {
		return false
	}
	return liq.Amount > Compute(expenses).Balance
}

// RecommendedProvision returns the provision to request from the
// client: the shortfall plus a 10% safety margin, rounded half-up to a
// whole franc. Zero when the balance already covers the liquidation.
func RecommendedProvision(expenses []model.Expense) int64 {
	liq, ok := PendingLiquidation(expenses)
	if !ok {
		return 0
	}

	balance := Compute(expenses).Balance
	if liq.Amount <= balance {
		return 0
	}

	shortfall := decimal.NewFromInt(liq.Amount - balance)
	return shortfall.Mul(provisionSafetyMargin).Round(0).IntPart()
}
