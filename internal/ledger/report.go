package ledger

import (
	"fmt"
	"strings"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

// Report composes the plain-text financial report for a shipment:
// identification, balance summary, pending liquidation and, when the
// audit finds anomalies, an anomalies section. Presentation only; all
// figures come from the pure computations above.
func Report(s *model.Shipment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "RAPPORT FINANCIER — Dossier %s\n", s.TrackingNumber)
	fmt.Fprintf(&b, "Client: %s\n", s.ClientName)
	if s.BLNumber != "" {
		fmt.Fprintf(&b, "BL: %s\n", s.BLNumber)
	}
	b.WriteString("\n")

	bal := Compute(s.Expenses)
	b.WriteString("SOLDE\n")
	fmt.Fprintf(&b, "  Provisions reçues:     %s (payées: %s)\n", FormatGNF(bal.Provisions), FormatGNF(bal.PaidProvisions))
	fmt.Fprintf(&b, "  Décaissements engagés: %s (payés: %s)\n", FormatGNF(bal.Disbursements), FormatGNF(bal.PaidDisbursements))
	fmt.Fprintf(&b, "  Solde disponible:      %s\n", FormatGNF(bal.Balance))
	b.WriteString("\n")

	if liq, ok := PendingLiquidation(s.Expenses); ok {
		b.WriteString("LIQUIDATION EN ATTENTE\n")
		fmt.Fprintf(&b, "  %s: %s\n", liq.Description, FormatGNF(liq.Amount))
		decision := CanPayLiquidation(s.Expenses)
		fmt.Fprintf(&b, "  %s\n", decision.Message)
		if rec := RecommendedProvision(s.Expenses); rec > 0 {
			fmt.Fprintf(&b, "  Provision recommandée: %s\n", FormatGNF(rec))
		}
		b.WriteString("\n")
	}

	if findings := Audit(s.Expenses); len(findings) > 0 {
		b.WriteString("ANOMALIES\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}

	return b.String()
}
