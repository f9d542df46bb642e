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
	"github.com/quantrail/fundgen/internal/refdata"
	"github.com/quantrail/fundgen/internal/universe"
)

// DailyPrices generates days of close prices for each of the fund's
// securities. Each series is a geometric random walk with drift from the
// fund type's expected annual return and sigma from its daily volatility,
// floored so no price goes non-positive. Walk state is threaded per
// security across the day loop.
func (g *Generator) DailyPrices(days int, fund universe.Fund) *Table {
	t := NewTable("daily_prices",
		"price_date", "security_id", "isin", "security_name",
		"currency", "close_price", "volume",
	)

	secs := g.u.SecuritiesOf(fund.ID)
	if len(secs) == 0 {
		return t
	}

	ft := fund.Type()
	drift := ft.ExpectedReturn / 252

	prices := make([]float64, len(secs))
	for i := range secs {
		prices[i] = g.faker.Float64(10, 250)
	}

	for day := 0; day < days; day++ {
		priceDate := seriesStart.AddDate(0, 0, day)
		for i, sec := range secs {
			prices[i] = g.walkNext(prices[i], drift, ft.DailyVolatility, priceFloor)
			t.Append(
				priceDate,
				sec.ID,
				sec.ISIN,
				sec.Name,
				sec.Currency,
				dec(prices[i], 4),
				g.faker.Int(1000, 5_000_000),
			)
		}
	}

	return t
}

// DailyNAV generates days of NAV rows for the fund: NAV per share walks
// from 100.0 with the fund type's parameters, shares outstanding drift
// slowly, and total net assets is their product.
func (g *Generator) DailyNAV(days int, fund universe.Fund) *Table {
	t := NewTable("daily_nav",
		"nav_date", "fund_id", "fund_name", "base_currency",
		"nav_per_share", "shares_outstanding", "total_net_assets",
	)

	ft := fund.Type()
	drift := ft.ExpectedReturn / 252
	nav := 100.0
	shares := fund.TargetAUM / nav

	for day := 0; day < days; day++ {
		nav = g.walkNext(nav, drift, ft.DailyVolatility, priceFloor)
		// Subscriptions and redemptions move shares a few basis points a day.
		shares = g.walkNext(shares, 0, 0.002, 1)

		t.Append(
			seriesStart.AddDate(0, 0, day),
			fund.ID,
			fund.Name,
			fund.BaseCurrency,
			dec(nav, 4),
			dec(shares, 0),
			money(nav*shares),
		)
	}

	return t
}

// fxDailyVolatility is the sigma applied to every FX walk.
const fxDailyVolatility = 0.005

// FXRates generates days of USD exchange rates for every non-USD currency,
// walking from the reference starting rate with zero drift.
func (g *Generator) FXRates(days int) *Table {
	t := NewTable("fx_rates",
		"rate_date", "base_currency", "quote_currency", "rate",
	)

	var quoted []refdata.Currency
	for _, c := range refdata.Currencies {
		if c.Code != "USD" {
			quoted = append(quoted, c)
		}
	}

	rates := make([]float64, len(quoted))
	for i, c := range quoted {
		rates[i] = c.USDRate
	}

	for day := 0; day < days; day++ {
		rateDate := seriesStart.AddDate(0, 0, day)
		for i, c := range quoted {
			rates[i] = g.walkNext(rates[i], 0, fxDailyVolatility, 1e-6)
			t.Append(rateDate, "USD", c.Code, dec(rates[i], 6))
		}
	}

	return t
}
