// Package ledger evaluates the financial state of a shipment from its
// append-only expense list: running balance, pending customs
// liquidation, payment authorization, provision recommendation and
// integrity audit. Everything here is a pure function over the expenses
// passed in; persistence and payment side effects live in the services.
package ledger

import "github.com/nimbatransit/transit-tracker/internal/model"

// Balance summarizes a shipment's provisions and disbursements in GNF.
// The balance is what the client has actually deposited minus what has
// actually been paid out on their behalf.
type Balance struct {
	Provisions        int64 `json:"provisions"`
	PaidProvisions    int64 `json:"paid_provisions"`
	Disbursements     int64 `json:"disbursements"`
	PaidDisbursements int64 `json:"paid_disbursements"`
	Balance           int64 `json:"balance"`
}

// Compute recomputes the balance from the expense list. An empty list
// yields the zero balance.
func Compute(expenses []model.Expense) Balance {
	var b Balance
	for _, e := range expenses {
		switch e.Type {
		case model.ExpenseProvision:
			b.Provisions += e.Amount
			if e.Paid {
				b.PaidProvisions += e.Amount
			}
		case model.ExpenseDisbursement:
			b.Disbursements += e.Amount
			if e.Paid {
				b.PaidDisbursements += e.Amount
			}
		}
	}
	b.Balance = b.PaidProvisions - b.PaidDisbursements
	return b
}
