package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

func provision(amount int64, paid bool) model.Expense {
	return model.Expense{Description: "Provision client", Amount: amount, Paid: paid, Category: "Provision", Type: model.ExpenseProvision}
}

func disbursement(amount int64, paid bool, category string) model.Expense {
	return model.Expense{Description: "Décaissement", Amount: amount, Paid: paid, Category: category, Type: model.ExpenseDisbursement}
}

func TestCompute(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		expenses := []model.Expense{
			provision(5_000_000, true),
			provision(3_000_000, true),
			disbursement(2_000_000, true, "Transport"),
			disbursement(1_000_000, true, "Manutention"),
		}

		b := Compute(expenses)
		assert.Equal(t, int64(8_000_000), b.Provisions)
		assert.Equal(t, int64(8_000_000), b.PaidProvisions)
		assert.Equal(t, int64(3_000_000), b.Disbursements)
		assert.Equal(t, int64(3_000_000), b.PaidDisbursements)
		assert.Equal(t, int64(5_000_000), b.Balance)
	})

	t.Run("unpaid entries excluded from balance", func(t *testing.T) {
		expenses := []model.Expense{
			provision(5_000_000, false),
			disbursement(2_000_000, false, "Transport"),
		}

		b := Compute(expenses)
		assert.Equal(t, int64(5_000_000), b.Provisions)
		assert.Zero(t, b.PaidProvisions)
		assert.Equal(t, int64(2_000_000), b.Disbursements)
		assert.Zero(t, b.PaidDisbursements)
		assert.Zero(t, b.Balance)
	})

	t.Run("fees do not move the balance", func(t *testing.T) {
		expenses := []model.Expense{
			provision(1_000_000, true),
			{Description: "Honoraires", Amount: 400_000, Paid: true, Category: "Honoraires", Type: model.ExpenseFee},
		}
		assert.Equal(t, int64(1_000_000), Compute(expenses).Balance)
	})

	t.Run("empty ledger is all zero", func(t *testing.T) {
		assert.Equal(t, Balance{}, Compute(nil))
	})
}

func TestPendingLiquidation(t *testing.T) {
	t.Run("finds unpaid customs disbursement", func(t *testing.T) {
		expenses := []model.Expense{
			provision(1_000_000, true),
			disbursement(3_000_000, false, model.CategoryCustoms),
		}
		liq, ok := PendingLiquidation(expenses)
		require.True(t, ok)
		assert.Equal(t, int64(3_000_000), liq.Amount)
	})

	t.Run("paid liquidation is not pending", func(t *testing.T) {
		_, ok := PendingLiquidation([]model.Expense{disbursement(3_000_000, true, model.CategoryCustoms)})
		assert.False(t, ok)
	})

	t.Run("other categories ignored", func(t *testing.T) {
		_, ok := PendingLiquidation([]model.Expense{disbursement(3_000_000, false, "Transport")})
		assert.False(t, ok)
	})

	t.Run("first in list order wins", func(t *testing.T) {
		first := disbursement(1_500_000, false, model.CategoryCustoms)
		first.Description = "Liquidation initiale"
		second := disbursement(2_500_000, false, model.CategoryCustoms)

		liq, ok := PendingLiquidation([]model.Expense{first, second})
		require.True(t, ok)
		assert.Equal(t, "Liquidation initiale", liq.Description)
	})
}

func TestCanPayLiquidation(t *testing.T) {
	t.Run("no pending liquidation", func(t *testing.T) {
		d := CanPayLiquidation([]model.Expense{provision(1_000_000, true)})
		assert.False(t, d.Authorized)
		assert.Contains(t, d.Message, "Aucune liquidation")
		assert.Zero(t, d.RequiredAmount)
	})

	t.Run("sufficient balance authorizes", func(t *testing.T) {
		expenses := []model.Expense{
			provision(4_000_000, true),
			disbursement(3_000_000, false, model.CategoryCustoms),
		}
		d := CanPayLiquidation(expenses)
		assert.True(t, d.Authorized)
		assert.Contains(t, d.Message, "autorisé")
	})

	t.Run("exact balance authorizes", func(t *testing.T) {
		expenses := []model.Expense{
			provision(3_000_000, true),
			disbursement(3_000_000, false, model.CategoryCustoms),
		}
		assert.True(t, CanPayLiquidation(expenses).Authorized)
	})

	t.Run("shortfall carries required amount", func(t *testing.T) {
		expenses := []model.Expense{
			provision(1_000_000, true),
			disbursement(3_000_000, false, model.CategoryCustoms),
		}
		d := CanPayLiquidation(expenses)
		assert.False(t, d.Authorized)
		assert.Contains(t, d.Message, "insuffisante")
		assert.Equal(t, int64(2_000_000), d.RequiredAmount)
	})
}

func TestProvisionRequired(t *testing.T) {
	shortfall := []model.Expense{
		provision(1_000_000, true),
		disbursement(3_000_000, false, model.CategoryCustoms),
	}
	assert.True(t, ProvisionRequired(shortfall))

	covered := []model.Expense{
		provision(5_000_000, true),
		disbursement(3_000_000, false, model.CategoryCustoms),
	}
	assert.False(t, ProvisionRequired(covered))

	assert.False(t, ProvisionRequired(nil))
}

func TestRecommendedProvision(t *testing.T) {
	t.Run("ten percent margin on shortfall", func(t *testing.T) {
		expenses := []model.Expense{
			provision(1_000_000, true),
			disbursement(3_000_000, false, model.CategoryCustoms),
		}
		assert.Equal(t, int64(2_200_000), RecommendedProvision(expenses))
	})

	t.Run("rounds to whole francs", func(t *testing.T) {
		expenses := []model.Expense{
			disbursement(15, false, model.CategoryCustoms),
		}
		// shortfall 15 x 1.10 = 16.5 -> 17
		assert.Equal(t, int64(17), RecommendedProvision(expenses))
	})

	t.Run("zero when covered", func(t *testing.T) {
		expenses := []model.Expense{
			provision(3_000_000, true),
			disbursement(3_000_000, false, model.CategoryCustoms),
		}
		assert.Zero(t, RecommendedProvision(expenses))
	})

	t.Run("zero without liquidation", func(t *testing.T) {
		assert.Zero(t, RecommendedProvision([]model.Expense{provision(500, true)}))
	})
}

func TestAudit(t *testing.T) {
	t.Run("healthy ledger", func(t *testing.T) {
		expenses := []model.Expense{
			provision(5_000_000, true),
			disbursement(2_000_000, true, "Transport"),
		}
		assert.Empty(t, Audit(expenses))
	})

	t.Run("negative provision flagged", func(t *testing.T) {
		findings := Audit([]model.Expense{provision(-1_000_000, true)})
		require.NotEmpty(t, findings)
		assert.Contains(t, findings[0], "négative")
	})

	t.Run("suspicious amount flagged", func(t *testing.T) {
		expenses := []model.Expense{
			provision(200_000_000, true),
			disbursement(150_000_000, true, "Transport"),
		}
		findings := Audit(expenses)
		suspects := 0
		for _, f := range findings {
			if strings.Contains(f, "suspect") {
				suspects++
			}
		}
		assert.Equal(t, 2, suspects)
	})

	t.Run("paid disbursements exceeding paid provisions", func(t *testing.T) {
		expenses := []model.Expense{
			provision(1_000_000, true),
			disbursement(2_000_000, true, "Transport"),
		}
		findings := Audit(expenses)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0], "supérieurs aux provisions")
	})

	t.Run("multiple findings in evaluation order", func(t *testing.T) {
		expenses := []model.Expense{
			provision(-1_000_000, true),
			disbursement(150_000_000, true, model.CategoryCustoms),
		}
		findings := Audit(expenses)
		require.Len(t, findings, 3)
		assert.Contains(t, findings[0], "négative")
		assert.Contains(t, findings[1], "supérieurs")
		assert.Contains(t, findings[2], "suspect")
	})
}
