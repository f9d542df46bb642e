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

	"github.com/quantrail/fundgen/internal/datagen"
	"github.com/quantrail/fundgen/internal/ident"
	"github.com/quantrail/fundgen/internal/universe"
)

var txnTypes = []string{"SUBSCRIPTION", "REDEMPTION", "SWITCH_IN", "SWITCH_OUT"}
var txnWeights = []int{45, 30, 13, 12}

// buyDirection reports whether money flows into the fund for the type.
func buyDirection(txnType string) bool {
	return txnType == "SUBSCRIPTION" || txnType == "SWITCH_IN"
}

// Transactions generates count transfer agency transactions against the
// fund. Each row draws a random account; its distributor and representative
// ids are copied from the account's own linkage, never re-sampled. Fees are
// added on top of the gross amount for buy-direction types and deducted for
// sell-direction types.
func (g *Generator) Transactions(count int, fund universe.Fund) *Table {
	t := NewTable("transactions",
		"txn_id", "trade_date", "settlement_date", "fund_id",
		"account_id", "shareholder_id", "distributor_id", "representative_id",
		"txn_type", "currency", "units", "price_per_unit",
		"gross_amount", "fee_amount", "net_amount", "status",
	)
	if len(g.u.Accounts) == 0 {
		return t
	}

	for i := 0; i < count; i++ {
		account := datagen.Choose(g.faker, g.u.Accounts)
		txnType := datagen.ChooseWeighted(g.faker, txnTypes, txnWeights)
		tradeDate := g.faker.Date(seriesStart, seriesStart.AddDate(1, 0, 0))

		pricePerUnit := g.faker.Float64(80, 130)
		units := g.faker.Float64(10, 5000)
		grossF := units * pricePerUnit
		gross := money(grossF)
		fee := money(g.faker.Float64(0, 0.02*grossF))

		net := gross.Sub(fee)
		if buyDirection(txnType) {
			net = gross.Add(fee)
		}

		status := datagen.ChooseWeighted(g.faker,
			[]string{"SETTLED", "PENDING", "CANCELLED"}, []int{85, 10, 5})

		t.Append(
			ident.Ref(g.faker, "TXN", 10),
			tradeDate,
			tradeDate.AddDate(0, 0, 3),
			fund.ID,
			account.ID,
			account.ShareholderID,
			account.DistributorID,
			account.RepresentativeID,
			txnType,
			account.Currency,
			dec(units, 4),
			money(pricePerUnit),
			gross,
			fee,
			net,
			status,
		)
	}

	return t
}

var cashActivityTypes = []string{
	"SUBSCRIPTION_INFLOW", "REDEMPTION_OUTFLOW", "MANAGEMENT_FEE",
	"DIVIDEND_PAYMENT", "INTEREST_RECEIVED", "CUSTODY_FEE",
}
var cashActivityWeights = []int{35, 25, 12, 10, 10, 8}

// cashOutflow reports whether the activity type moves cash out of the fund.
func cashOutflow(activityType string) bool {
	switch activityType {
	case "REDEMPTION_OUTFLOW", "MANAGEMENT_FEE", "DIVIDEND_PAYMENT", "CUSTODY_FEE":
		return true
	}
	return false
}

// CashActivity generates count dated cash ledger entries for the fund with
// signed amounts and a running balance. Entries are emitted in date order.
func (g *Generator) CashActivity(count int, fund universe.Fund) *Table {
	t := NewTable("cash_activity",
		"entry_id", "fund_id", "account_id", "activity_date",
		"activity_type", "currency", "amount", "balance_after",
	)
	if len(g.u.Accounts) == 0 {
		return t
	}

	balance := money(g.uniformScaled(fund.TargetAUM, 0.0005, 0.002))
	activityDate := seriesStart

	for i := 0; i < count; i++ {
		activityDate = activityDate.AddDate(0, 0, g.faker.Int(0, 3))
		account := datagen.Choose(g.faker, g.u.Accounts)
		activityType := datagen.ChooseWeighted(g.faker, cashActivityTypes, cashActivityWeights)

		amount := money(g.uniformScaled(fund.TargetAUM, 0.000001, 0.0001))
		if cashOutflow(activityType) {
			amount = amount.Neg()
		}
		balance = balance.Add(amount)

		t.Append(
			ident.Sequential("CSH", i+1, 8),
			fund.ID,
			account.ID,
			activityDate,
			activityType,
			fund.BaseCurrency,
			amount,
			balance,
		)
	}

	return t
}

// RegulatoryTransactions generates count MiFIR-style transaction reports
// for the fund's listed securities. Funds holding no ISIN-bearing
// instruments produce an empty table.
func (g *Generator) RegulatoryTransactions(count int, fund universe.Fund) *Table {
	t := NewTable("regulatory_transactions",
		"report_id", "transaction_ref", "executing_entity_lei", "client_lei",
		"isin", "buy_sell", "quantity", "price", "notional", "currency",
		"trading_venue", "trade_timestamp", "reporting_timestamp",
	)

	var listed []universe.Security
	for _, s := range g.u.SecuritiesOf(fund.ID) {
		if s.AssetClass.Tradable() {
			listed = append(listed, s)
		}
	}
	if len(listed) == 0 {
		return t
	}

	executingLEI := ident.LEI(g.faker)
	for i := 0; i < count; i++ {
		sec := datagen.Choose(g.faker, listed)
		quantity := g.faker.Int(100, 50000)
		price := g.faker.Float64(5, 400)
		tradeTS := g.faker.Date(seriesStart, seriesStart.AddDate(1, 0, 0)).
			Add(time.Duration(g.faker.Int(8*3600, 17*3600)) * time.Second)

		side := "BUY"
		if g.faker.Bool() {
			side = "SELL"
		}

		t.Append(
			ident.Sequential("REG", i+1, 8),
			ident.Ref(g.faker, "TRN", 12),
			executingLEI,
			ident.LEI(g.faker),
			sec.ISIN,
			side,
			quantity,
			dec(price, 4),
			money(float64(quantity)*price),
			sec.Currency,
			sec.ExchangeMIC,
			tradeTS,
			tradeTS.Add(time.Duration(g.faker.Int(60, 3600))*time.Second),
		)
	}

	return t
}
