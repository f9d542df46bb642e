//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

import (
	"github.com/shopspring/decimal"

	"github.com/quantrail/fundgen/internal/universe"
)

// FinancialStatements generates count monthly income statement and balance
// sheet rows for the fund, with magnitudes scaled to its target AUM. Dates
// advance on 30-day boundaries from the series start. Derived lines are
// computed from the sampled primitives so the accounting identities hold
// exactly: gross profit = revenue - cogs, total assets = current assets +
// PP&E, and equity = assets - liabilities.
func (g *Generator) FinancialStatements(count int, fund universe.Fund) *Table {
	t := NewTable("financial_statements",
		"fund_id", "report_date",
		"revenue", "cost_of_goods_sold", "gross_profit",
		"operating_expenses", "ebit", "interest_expense", "taxes", "net_income",
		"cash", "accounts_receivable", "inventory", "total_current_assets",
		"property_plant_equipment", "total_assets",
		"accounts_payable", "short_term_debt", "total_current_liabilities",
		"long_term_debt", "total_liabilities", "equity",
	)

	aum := fund.TargetAUM
	for i := 0; i < count; i++ {
		reportDate := seriesStart.AddDate(0, 0, i*30)

		// Income statement
		revenueF := g.uniformScaled(aum, 0.0005, 0.0015)
		revenue := money(revenueF)
		cogs := money(g.faker.Float64(0.3*revenueF, 0.6*revenueF))
		grossProfit := revenue.Sub(cogs)
		opex := money(g.faker.Float64(0.15*revenueF, 0.3*revenueF))
		ebit := grossProfit.Sub(opex)

		interest := decimal.Zero
		taxes := decimal.Zero
		if ebitF, _ := ebit.Float64(); ebitF > 0 {
			interest = money(g.faker.Float64(0, 0.05*ebitF))
			taxes = money(g.faker.Float64(0.15*ebitF, 0.25*ebitF))
		}
		netIncome := ebit.Sub(interest).Sub(taxes)

		// Balance sheet (simplified), components AUM-scaled
		cash := money(g.uniformScaled(aum, 0.0002, 0.0010))
		receivable := money(g.uniformScaled(aum, 0.0001, 0.0004))
		inventory := money(g.uniformScaled(aum, 0.00006, 0.0003))
		currentAssets := cash.Add(receivable).Add(inventory)
		ppe := money(g.uniformScaled(aum, 0.001, 0.004))
		totalAssets := currentAssets.Add(ppe)

		payable := money(g.uniformScaled(aum, 0.00008, 0.00036))
		shortTermDebt := money(g.uniformScaled(aum, 0.00004, 0.0002))
		currentLiabilities := payable.Add(shortTermDebt)
		longTermDebt := money(g.uniformScaled(aum, 0.0004, 0.0016))
		totalLiabilities := currentLiabilities.Add(longTermDebt)

		// Equity balances the sheet by construction.
		equity := totalAssets.Sub(totalLiabilities)

		t.Append(fund.ID, reportDate,
			revenue, cogs, grossProfit,
			opex, ebit, interest, taxes, netIncome,
			cash, receivable, inventory, currentAssets,
			ppe, totalAssets,
			payable, shortTermDebt, currentLiabilities,
			longTermDebt, totalLiabilities, equity,
		)
	}

	return t
}
