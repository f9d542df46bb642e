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
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantrail/fundgen/internal/datagen"
	"github.com/quantrail/fundgen/internal/universe"
)

// seriesStart anchors all generated report and time-series dates.
var seriesStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// priceFloor is the clamp applied to every price, NAV, and FX walk so a
// series can never go non-positive.
const priceFloor = 0.01

// Generator produces report tables from a shared master entity universe.
// All randomness flows through its faker, so a seeded faker makes every
// table reproducible.
type Generator struct {
	faker *datagen.Faker
	u     *universe.Universe
}

// NewGenerator creates a generator over the given universe.
func NewGenerator(f *datagen.Faker, u *universe.Universe) *Generator {
	return &Generator{faker: f, u: u}
}

// Universe returns the master entity set the generator draws from.
func (g *Generator) Universe() *universe.Universe {
	return g.u
}

// Generate produces the table for one report kind. count follows the kind's
// semantics (days, periods, or rows; ignored by snapshots). fund is the
// session fund most kinds are keyed off; typeFilter scopes the fund-level
// kinds that report across funds.
func (g *Generator) Generate(kind Kind, count int, fund universe.Fund, typeFilter string) *Table {
	switch kind {
	case KindFinancialStatements:
		return g.FinancialStatements(count, fund)
	case KindTransactions:
		return g.Transactions(count, fund)
	case KindPortfolioHoldings:
		return g.PortfolioHoldings(fund)
	case KindCashActivity:
		return g.CashActivity(count, fund)
	case KindRegulatoryTransactions:
		return g.RegulatoryTransactions(count, fund)
	case KindTradeOrders:
		return g.TradeOrders(count, fund)
	case KindExecutedTrades:
		return g.ExecutedTrades(count, fund)
	case KindDailyPrices:
		return g.DailyPrices(count, fund)
	case KindFundCharacteristics:
		return g.FundCharacteristics(typeFilter)
	case KindDailyNAV:
		return g.DailyNAV(count, fund)
	case KindCustodyHoldings:
		return g.CustodyHoldings(fund)
	case KindTrialBalance:
		return g.TrialBalance(count, fund)
	case KindCorporateActions:
		return g.CorporateActions(count, fund)
	case KindFXRates:
		return g.FXRates(count)
	}
	// Unreachable for catalog kinds; a new Kind without a case lands here
	// during development.
	return NewTable(kind.String())
}

// money rounds a float to a 2-decimal monetary amount.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// dec rounds a float to the given number of decimal places.
func dec(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}

// walkNext advances a geometric random walk one step:
// next = prev * (1 + drift + N(0, vol)), clamped at floor.
func (g *Generator) walkNext(prev, drift, vol, floor float64) float64 {
	next := prev * (1 + drift + g.faker.Gaussian(0, vol))
	if next < floor {
		next = floor
	}
	return next
}

// uniformScaled draws a uniform value between lo*base and hi*base.
func (g *Generator) uniformScaled(base, lo, hi float64) float64 {
	return g.faker.Float64(lo*base, hi*base)
}
