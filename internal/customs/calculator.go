// Package customs computes import duty breakdowns for shipments
// cleared through Guinean customs. All arithmetic is exact decimal;
// binary floating point never touches a monetary value.
package customs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

// Rates is a customs rate schedule with each component expressed as a
// fraction of its taxable base.
type Rates struct {
	DD         decimal.Decimal
	RTL        decimal.Decimal
	RDL        decimal.Decimal
	TVS        decimal.Decimal
	Source     string
	LastUpdate time.Time
}

// NewRates converts a stored rate schedule into its exact decimal form.
func NewRates(m model.CustomsRates) Rates {
	return Rates{
		DD:         decimal.NewFromFloat(m.DD),
		RTL:        decimal.NewFromFloat(m.RTL),
		RDL:        decimal.NewFromFloat(m.RDL),
		TVS:        decimal.NewFromFloat(m.TVS),
		Source:     m.Source,
		LastUpdate: m.LastUpdate,
	}
}

// rateStaleness is how old a rate schedule may be before quotes should
// warn the operator. A schedule exactly this old is still fresh.
const rateStaleness = 30 * 24 * time.Hour

// Stale reports whether the schedule is older than 30 days at now.
func (r Rates) Stale(now time.Time) bool {
	return now.Sub(r.LastUpdate) > rateStaleness
}

// Breakdown is the immutable result of a duty calculation. Every field
// is rounded half-up to 2 decimal places; a fresh value is allocated on
// each call and never mutated.
type Breakdown struct {
	ValueCAF       decimal.Decimal `json:"value_caf"`
	DD             decimal.Decimal `json:"dd"`
	RTL            decimal.Decimal `json:"rtl"`
	RDL            decimal.Decimal `json:"rdl"`
	TVS            decimal.Decimal `json:"tvs"`
	TaxableBaseTVS decimal.Decimal `json:"taxable_base_tvs"`
	TotalDuties    decimal.Decimal `json:"total_duties"`
}

// Calculate computes the duty breakdown for a shipment's FOB value,
// freight and insurance. Order matters: TVS is levied on CAF plus DD,
// so DD must be derived first. Intermediates keep full precision; each
// output field is rounded independently at the end.
func Calculate(fob, freight, insurance decimal.Decimal, r Rates) Breakdown {
	caf := fob.Add(freight).Add(insurance)

	dd := caf.Mul(r.DD)
	rtl := caf.Mul(r.RTL)
	rdl := caf.Mul(r.RDL)

	baseTVS := caf.Add(dd)
	tvs := baseTVS.Mul(r.TVS)

	total := dd.Add(rtl).Add(rdl).Add(tvs)

	return Breakdown{
		ValueCAF:       caf.Round(2),
		DD:             dd.Round(2),
		RTL:            rtl.Round(2),
		RDL:            rdl.Round(2),
		TVS:            tvs.Round(2),
		TaxableBaseTVS: baseTVS.Round(2),
		TotalDuties:    total.Round(2),
	}
}

// CalculateFromGNF is Calculate over whole-franc amounts.
func CalculateFromGNF(fob, freight, insurance int64, r Rates) Breakdown {
	return Calculate(decimal.NewFromInt(fob), decimal.NewFromInt(freight), decimal.NewFromInt(insurance), r)
}

var one = decimal.NewFromInt(1)

// ValidateRates reports whether every rate lies in [0,1] inclusive.
func ValidateRates(r Rates) bool {
	for _, v := range []decimal.Decimal{r.DD, r.RTL, r.RDL, r.TVS} {
		if v.IsNegative() || v.GreaterThan(one) {
			return false
		}
	}
	return true
}

// DutiesPercentage returns total duties as a fraction of the CAF value,
// rounded to 4 decimal places. A zero CAF yields 0 rather than a
// division error.
func DutiesPercentage(b Breakdown) decimal.Decimal {
	if b.ValueCAF.IsZero() {
		return decimal.Zero
	}
	return b.TotalDuties.DivRound(b.ValueCAF, 4)
}
