package reports

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quantrail/fundgen/internal/universe"
)

func TestPortfolioHoldingsShape(t *testing.T) {
	g, fund := newTestGenerator(t, 40)
	secs := g.Universe().SecuritiesOf(fund.ID)

	tbl := g.PortfolioHoldings(fund)
	if tbl.RowCount() != len(secs) {
		t.Fatalf("got %d rows, want one per security (%d)", tbl.RowCount(), len(secs))
	}
}

func TestPortfolioHoldingsWeightsSum(t *testing.T) {
	g, fund := newTestGenerator(t, 41)
	tbl := g.PortfolioHoldings(fund)

	sum := decimal.Zero
	for i := 0; i < tbl.RowCount(); i++ {
		weight := cell(t, tbl, i, "weight_pct")
		if weight.IsNegative() {
			t.Errorf("row %d weight %s is negative", i, weight)
		}
		sum = sum.Add(weight)
	}

	// Per-row rounding to 4 decimals leaves at most a few basis points.
	diff, _ := sum.Sub(decimal.NewFromInt(100)).Abs().Float64()
	if diff > 0.01 {
		t.Errorf("weights sum to %s, want 100 within 0.01", sum)
	}
}

func TestPortfolioHoldingsMarketValue(t *testing.T) {
	g, fund := newTestGenerator(t, 42)
	tbl := g.PortfolioHoldings(fund)

	for i := 0; i < tbl.RowCount(); i++ {
		quantity := cell(t, tbl, i, "quantity")
		price := cell(t, tbl, i, "price")
		value := cell(t, tbl, i, "market_value")
		if !value.Equal(quantity.Mul(price).Round(2)) {
			t.Errorf("row %d: market value %s != quantity %s x price %s",
				i, value, quantity, price)
		}
	}
}

func TestPortfolioHoldingsEmptyFund(t *testing.T) {
	g, _ := newTestGenerator(t, 43)
	ghost := universe.Fund{ID: "FND-9999", TypeName: "Hedge Fund"}
	if tbl := g.PortfolioHoldings(ghost); !tbl.Empty() {
		t.Errorf("fund without securities produced %d holding rows", tbl.RowCount())
	}
}

func TestCustodyHoldings(t *testing.T) {
	g, fund := newTestGenerator(t, 44)
	u := g.Universe()
	custodian, _ := u.CustodianByID(fund.CustodianID)

	tbl := g.CustodyHoldings(fund)
	if tbl.RowCount() != len(u.SecuritiesOf(fund.ID)) {
		t.Fatalf("got %d rows, want one per security", tbl.RowCount())
	}

	account := cellString(t, tbl, 0, "safekeeping_account")
	for i := 0; i < tbl.RowCount(); i++ {
		if got := cellString(t, tbl, i, "custodian_id"); got != custodian.ID {
			t.Errorf("row %d custodian %s, want %s", i, got, custodian.ID)
		}
		if got := cellString(t, tbl, i, "custodian_bic"); got != custodian.BIC {
			t.Errorf("row %d BIC %s, want %s", i, got, custodian.BIC)
		}
		// All positions sit in one safekeeping account per fund
		if got := cellString(t, tbl, i, "safekeeping_account"); got != account {
			t.Errorf("row %d safekeeping account %s differs from %s", i, got, account)
		}
	}
}
