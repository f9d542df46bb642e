package reports

import (
	"testing"
)

func TestFinancialStatementsShape(t *testing.T) {
	g, fund := newTestGenerator(t, 1)
	tbl := g.FinancialStatements(3, fund)

	if tbl.RowCount() != 3 {
		t.Fatalf("got %d rows, want 3", tbl.RowCount())
	}
	if len(tbl.Columns) != 22 {
		t.Errorf("got %d columns, want 22", len(tbl.Columns))
	}
}

func TestFinancialStatementsDates(t *testing.T) {
	g, fund := newTestGenerator(t, 2)
	tbl := g.FinancialStatements(4, fund)

	for i := 0; i < tbl.RowCount(); i++ {
		want := seriesStart.AddDate(0, 0, i*30)
		if got := cellTime(t, tbl, i, "report_date"); !got.Equal(want) {
			t.Errorf("row %d report_date = %v, want %v", i, got, want)
		}
	}
}

func TestFinancialStatementsIdentities(t *testing.T) {
	g, fund := newTestGenerator(t, 3)
	tbl := g.FinancialStatements(12, fund)

	for i := 0; i < tbl.RowCount(); i++ {
		revenue := cell(t, tbl, i, "revenue")
		cogs := cell(t, tbl, i, "cost_of_goods_sold")
		grossProfit := cell(t, tbl, i, "gross_profit")
		if !grossProfit.Equal(revenue.Sub(cogs)) {
			t.Errorf("row %d: gross profit %s != revenue %s - cogs %s", i, grossProfit, revenue, cogs)
		}

		ebit := cell(t, tbl, i, "ebit")
		if !ebit.Equal(grossProfit.Sub(cell(t, tbl, i, "operating_expenses"))) {
			t.Errorf("row %d: ebit does not equal gross profit - opex", i)
		}

		netIncome := cell(t, tbl, i, "net_income")
		wantNet := ebit.Sub(cell(t, tbl, i, "interest_expense")).Sub(cell(t, tbl, i, "taxes"))
		if !netIncome.Equal(wantNet) {
			t.Errorf("row %d: net income %s, want %s", i, netIncome, wantNet)
		}

		currentAssets := cell(t, tbl, i, "total_current_assets")
		wantCurrent := cell(t, tbl, i, "cash").
			Add(cell(t, tbl, i, "accounts_receivable")).
			Add(cell(t, tbl, i, "inventory"))
		if !currentAssets.Equal(wantCurrent) {
			t.Errorf("row %d: current assets %s, want %s", i, currentAssets, wantCurrent)
		}

		totalAssets := cell(t, tbl, i, "total_assets")
		if !totalAssets.Equal(currentAssets.Add(cell(t, tbl, i, "property_plant_equipment"))) {
			t.Errorf("row %d: total assets do not sum", i)
		}

		totalLiabilities := cell(t, tbl, i, "total_liabilities")
		wantLiabilities := cell(t, tbl, i, "accounts_payable").
			Add(cell(t, tbl, i, "short_term_debt")).
			Add(cell(t, tbl, i, "long_term_debt"))
		if !totalLiabilities.Equal(wantLiabilities) {
			t.Errorf("row %d: total liabilities %s, want %s", i, totalLiabilities, wantLiabilities)
		}

		// The balance sheet balances by construction
		equity := cell(t, tbl, i, "equity")
		if !totalAssets.Equal(totalLiabilities.Add(equity)) {
			t.Errorf("row %d: assets %s != liabilities %s + equity %s",
				i, totalAssets, totalLiabilities, equity)
		}
	}
}

func TestFinancialStatementsRevenueScaledToAUM(t *testing.T) {
	g, fund := newTestGenerator(t, 4)
	tbl := g.FinancialStatements(12, fund)

	lo := fund.TargetAUM * 0.0005
	hi := fund.TargetAUM * 0.0015
	for i := 0; i < tbl.RowCount(); i++ {
		rev, _ := cell(t, tbl, i, "revenue").Float64()
		// Rounding to cents can nudge past the bounds by half a cent.
		if rev < lo-0.01 || rev > hi+0.01 {
			t.Errorf("row %d revenue %.2f outside AUM-scaled bounds [%.2f, %.2f]", i, rev, lo, hi)
		}
	}
}
