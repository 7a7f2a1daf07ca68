package customs

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

func testRates() Rates {
	return Rates{
		DD:  decimal.RequireFromString("0.2"),
		RTL: decimal.RequireFromString("0.05"),
		RDL: decimal.RequireFromString("0.03"),
		TVS: decimal.RequireFromString("0.1"),
	}
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	b := CalculateFromGNF(1000000, 100000, 50000, testRates())

	assertDecimalEqual(t, "1150000", b.ValueCAF)
	assertDecimalEqual(t, "230000", b.DD)
	assertDecimalEqual(t, "57500", b.RTL)
	assertDecimalEqual(t, "34500", b.RDL)
	assertDecimalEqual(t, "1380000", b.TaxableBaseTVS)
	assertDecimalEqual(t, "138000", b.TVS)
	assertDecimalEqual(t, "460000", b.TotalDuties)
}

func TestCalculate_Invariants(t *testing.T) {
	fob := decimal.RequireFromString("123456.78")
	freight := decimal.RequireFromString("2345.67")
	insurance := decimal.RequireFromString("345.89")
	b := Calculate(fob, freight, insurance, testRates())

	assert.True(t, b.ValueCAF.Equal(fob.Add(freight).Add(insurance)), "CAF must be the exact sum")
	assert.True(t, b.TaxableBaseTVS.Equal(b.ValueCAF.Add(b.DD)), "TVS base must be CAF plus DD")
	assert.True(t, b.TotalDuties.Equal(b.DD.Add(b.RTL).Add(b.RDL).Add(b.TVS)), "total must be the component sum")
}

func TestCalculate_Idempotent(t *testing.T) {
	r := testRates()
	first := CalculateFromGNF(7777777, 31415, 2718, r)
	second := CalculateFromGNF(7777777, 31415, 2718, r)
	assert.Equal(t, first, second)
}

func TestCalculate_RoundsHalfUp(t *testing.T) {
	// 101 x 0.125 = 12.625, which must round to 12.63, not 12.62.
	r := Rates{
		DD:  decimal.RequireFromString("0.125"),
		RTL: decimal.Zero,
		RDL: decimal.Zero,
		TVS: decimal.Zero,
	}
	b := CalculateFromGNF(101, 0, 0, r)
	assertDecimalEqual(t, "12.63", b.DD)
}

func TestCalculate_ZeroInputs(t *testing.T) {
	b := CalculateFromGNF(0, 0, 0, testRates())
	assert.True(t, b.ValueCAF.IsZero())
	assert.True(t, b.TotalDuties.IsZero())
}

func TestDutiesPercentage(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		b := CalculateFromGNF(1000000, 100000, 50000, testRates())
		assertDecimalEqual(t, "0.4", DutiesPercentage(b))
	})

	t.Run("zero CAF yields zero", func(t *testing.T) {
		b := CalculateFromGNF(0, 0, 0, testRates())
		assert.True(t, DutiesPercentage(b).IsZero())
	})

	t.Run("rounded to four places", func(t *testing.T) {
		r := Rates{
			DD:  decimal.RequireFromString("0.3333"),
			RTL: decimal.Zero,
			RDL: decimal.Zero,
			TVS: decimal.Zero,
		}
		b := CalculateFromGNF(300, 0, 0, r)
		// DD = 99.99, total/caf = 0.3333
		assertDecimalEqual(t, "0.3333", DutiesPercentage(b))
	})
}

func TestValidateRates(t *testing.T) {
	cases := []struct {
		name string
		r    Rates
		want bool
	}{
		{"typical schedule", testRates(), true},
		{"all zero", Rates{}, true},
		{"upper bound inclusive", Rates{DD: decimal.NewFromInt(1)}, true},
		{"above one", Rates{TVS: decimal.RequireFromString("1.01")}, false},
		{"negative", Rates{RDL: decimal.RequireFromString("-0.01")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateRates(tc.r))
		})
	}
}

func TestRates_Stale(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("exactly 30 days is fresh", func(t *testing.T) {
		r := Rates{LastUpdate: now.Add(-30 * 24 * time.Hour)}
		assert.False(t, r.Stale(now))
	})

	t.Run("31 days is stale", func(t *testing.T) {
		r := Rates{LastUpdate: now.Add(-31 * 24 * time.Hour)}
		assert.True(t, r.Stale(now))
	})

	t.Run("yesterday is fresh", func(t *testing.T) {
		r := Rates{LastUpdate: now.Add(-24 * time.Hour)}
		assert.False(t, r.Stale(now))
	})
}

func TestNewRates(t *testing.T) {
	r := NewRates(model.CustomsRates{DD: 0.2, RTL: 0.02, RDL: 0.02, TVS: 0.18, Source: "DGD"})
	assertDecimalEqual(t, "0.2", r.DD)
	assertDecimalEqual(t, "0.02", r.RTL)
	assertDecimalEqual(t, "0.02", r.RDL)
	assertDecimalEqual(t, "0.18", r.TVS)
	assert.True(t, ValidateRates(r))
}
