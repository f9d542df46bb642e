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

	"github.com/quantrail/fundgen/internal/ident"
	"github.com/quantrail/fundgen/internal/universe"
)

// PortfolioHoldings generates a position snapshot of the fund: one row per
// security with market value and its weight of the total. A fund with no
// securities yields an empty table rather than an error.
func (g *Generator) PortfolioHoldings(fund universe.Fund) *Table {
	t := NewTable("portfolio_holdings",
		"as_of_date", "fund_id", "security_id", "isin", "security_name",
		"asset_class", "quantity", "price", "market_value", "currency",
		"weight_pct",
	)

	secs := g.u.SecuritiesOf(fund.ID)
	if len(secs) == 0 {
		return t
	}

	asOf := seriesStart.AddDate(1, 0, -1)

	// First pass samples positions; weights need the total.
	quantities := make([]decimal.Decimal, len(secs))
	prices := make([]decimal.Decimal, len(secs))
	values := make([]decimal.Decimal, len(secs))
	total := decimal.Zero
	for i := range secs {
		quantities[i] = dec(g.faker.Float64(100, 500000), 2)
		prices[i] = dec(g.faker.Float64(5, 400), 4)
		values[i] = quantities[i].Mul(prices[i]).Round(2)
		total = total.Add(values[i])
	}

	hundred := decimal.NewFromInt(100)
	for i, sec := range secs {
		weight := decimal.Zero
		if !total.IsZero() {
			weight = values[i].Mul(hundred).Div(total).Round(4)
		}
		t.Append(
			asOf,
			fund.ID,
			sec.ID,
			sec.ISIN,
			sec.Name,
			string(sec.AssetClass),
			quantities[i],
			prices[i],
			values[i],
			sec.Currency,
			weight,
		)
	}

	return t
}

// CustodyHoldings generates the safekeeping view of the fund's positions at
// its assigned custodian.
func (g *Generator) CustodyHoldings(fund universe.Fund) *Table {
	t := NewTable("custody_holdings",
		"as_of_date", "custodian_id", "custodian_bic", "safekeeping_account",
		"fund_id", "security_id", "isin", "quantity", "market_value",
		"currency", "place_of_safekeeping",
	)

	secs := g.u.SecuritiesOf(fund.ID)
	if len(secs) == 0 {
		return t
	}

	custodian, ok := g.u.CustodianByID(fund.CustodianID)
	if !ok {
		return t
	}

	asOf := seriesStart.AddDate(1, 0, -1)
	safekeepingAccount := ident.Ref(g.faker, "SAFE", 8)

	for _, sec := range secs {
		quantity := dec(g.faker.Float64(100, 500000), 2)
		price := g.faker.Float64(5, 400)
		t.Append(
			asOf,
			custodian.ID,
			custodian.BIC,
			safekeepingAccount,
			fund.ID,
			sec.ID,
			sec.ISIN,
			quantity,
			quantity.Mul(dec(price, 4)).Round(2),
			sec.Currency,
			custodian.Country,
		)
	}

	return t
}
