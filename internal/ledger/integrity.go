package ledger

import (
	"fmt"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

// suspiciousAmountGNF is the single-expense threshold above which an
// entry is flagged for manual review.
const suspiciousAmountGNF int64 = 100_000_000

// Audit scans the expense list for financial anomalies and returns a
// human-readable finding per issue, in evaluation order. An empty slice
// means the ledger is healthy. Findings are warnings, never errors:
// they flag entries for review without blocking any computation.
func Audit(expenses []model.Expense) []string {
	var findings []string

	for _, e := range expenses {
		if e.Type == model.ExpenseProvision && e.Amount < 0 {
			findings = append(findings, fmt.Sprintf(
				"Provision négative détectée: %q (%s)", e.Description, FormatGNF(e.Amount)))
		}
	}

	b := Compute(expenses)
	if b.PaidDisbursements > b.PaidProvisions {
		findings = append(findings, fmt.Sprintf(
			"Décaissements payés (%s) supérieurs aux provisions payées (%s)",
			FormatGNF(b.PaidDisbursements), FormatGNF(b.PaidProvisions)))
	}

	for _, e := range expenses {
		if e.Amount > suspiciousAmountGNF {
			findings = append(findings, fmt.Sprintf(
				"Montant suspect: %q dépasse le seuil de %s (%s)",
				e.Description, FormatGNF(suspiciousAmountGNF), FormatGNF(e.Amount)))
		}
	}

	return findings
}
