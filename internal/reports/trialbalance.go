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

	"github.com/quantrail/fundgen/internal/refdata"
	"github.com/quantrail/fundgen/internal/universe"
)

// TrialBalance generates periods month-end trial balance reports for the
// fund. Every chart-of-accounts line receives an AUM-scaled magnitude on
// its normal side; the residual imbalance of each period is then added to
// one randomly chosen line on the deficit side. The adjustment only ever
// lands on a line whose normal side matches the deficit, so no account
// category swings to its abnormal side, and total debits equal total
// credits exactly.
func (g *Generator) TrialBalance(periods int, fund universe.Fund) *Table {
	t := NewTable("trial_balance",
		"report_date", "fund_id", "account_code", "account_name",
		"category", "debit_balance", "credit_balance",
	)

	coa := refdata.ChartOfAccounts
	for p := 0; p < periods; p++ {
		reportDate := seriesStart.AddDate(0, p+1, -1)

		debits := make([]decimal.Decimal, len(coa))
		credits := make([]decimal.Decimal, len(coa))
		sumDebit := decimal.Zero
		sumCredit := decimal.Zero

		for i, acct := range coa {
			magnitude := money(fund.TargetAUM * acct.Weight * g.faker.Float64(0.5, 1.5))
			if acct.NormalSide == refdata.Debit {
				debits[i] = magnitude
				sumDebit = sumDebit.Add(magnitude)
			} else {
				credits[i] = magnitude
				sumCredit = sumCredit.Add(magnitude)
			}
		}

		// Force the double-entry constraint.
		residual := sumDebit.Sub(sumCredit)
		switch {
		case residual.IsPositive():
			i := g.pickSide(coa, refdata.Credit)
			credits[i] = credits[i].Add(residual)
		case residual.IsNegative():
			i := g.pickSide(coa, refdata.Debit)
			debits[i] = debits[i].Add(residual.Neg())
		}

		for i, acct := range coa {
			t.Append(
				reportDate,
				fund.ID,
				acct.Code,
				acct.Name,
				acct.Category,
				debits[i],
				credits[i],
			)
		}
	}

	return t
}

// pickSide returns the index of a random chart line whose normal side is side.
func (g *Generator) pickSide(coa []refdata.LedgerAccount, side refdata.AccountSide) int {
	var candidates []int
	for i, acct := range coa {
		if acct.NormalSide == side {
			candidates = append(candidates, i)
		}
	}
	return candidates[g.faker.Int(0, len(candidates)-1)]
}
