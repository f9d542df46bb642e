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

// TradeOrders generates count front office order blotter rows against the
// fund's securities. Market orders carry a NULL limit price. Funds with no
// securities produce an empty table.
func (g *Generator) TradeOrders(count int, fund universe.Fund) *Table {
	t := NewTable("trade_orders",
		"order_id", "fund_id", "security_id", "isin", "side", "order_type",
		"quantity", "limit_price", "currency", "status", "broker_bic",
		"placed_at", "updated_at",
	)

	secs := g.u.SecuritiesOf(fund.ID)
	if len(secs) == 0 {
		return t
	}

	for i := 0; i < count; i++ {
		sec := datagen.Choose(g.faker, secs)
		placedAt := g.faker.Date(seriesStart, seriesStart.AddDate(1, 0, 0)).
			Add(time.Duration(g.faker.Int(8*3600, 16*3600)) * time.Second)

		side := "BUY"
		if g.faker.Bool() {
			side = "SELL"
		}
		orderType := datagen.ChooseWeighted(g.faker,
			[]string{"MARKET", "LIMIT"}, []int{60, 40})

		var limitPrice any
		if orderType == "LIMIT" {
			limitPrice = dec(g.faker.Float64(5, 400), 4)
		}

		status := datagen.ChooseWeighted(g.faker,
			[]string{"FILLED", "PARTIALLY_FILLED", "NEW", "CANCELLED"},
			[]int{70, 10, 10, 10})

		brokerCountry := datagen.Choose(g.faker, []string{"US", "GB", "DE", "CH", "FR"})

		t.Append(
			ident.Sequential("ORD", i+1, 8),
			fund.ID,
			sec.ID,
			sec.ISIN,
			side,
			orderType,
			g.faker.Int(100, 100000),
			limitPrice,
			sec.Currency,
			status,
			ident.BIC(g.faker, brokerCountry),
			placedAt,
			placedAt.Add(time.Duration(g.faker.Int(1, 7200))*time.Second),
		)
	}

	return t
}

// ExecutedTrades generates count executed fills for the fund. Net amount is
// gross plus commission on buys and gross minus commission on sells;
// settlement is T+2 at the fund's custodian.
func (g *Generator) ExecutedTrades(count int, fund universe.Fund) *Table {
	t := NewTable("executed_trades",
		"trade_id", "order_id", "fund_id", "security_id", "isin", "side",
		"quantity", "price", "gross_amount", "commission", "net_amount",
		"currency", "counterparty", "counterparty_bic", "custodian_id",
		"trade_date", "settlement_date",
	)

	secs := g.u.SecuritiesOf(fund.ID)
	if len(secs) == 0 {
		return t
	}

	for i := 0; i < count; i++ {
		sec := datagen.Choose(g.faker, secs)
		tradeDate := g.faker.Date(seriesStart, seriesStart.AddDate(1, 0, 0))
		quantity := g.faker.Int(100, 50000)
		price := g.faker.Float64(5, 400)
		grossF := float64(quantity) * price
		gross := money(grossF)
		commission := money(g.faker.Float64(0.0001*grossF, 0.002*grossF))

		side := "BUY"
		net := gross.Add(commission)
		if g.faker.Bool() {
			side = "SELL"
			net = gross.Sub(commission)
		}

		cptyCountry := datagen.Choose(g.faker, []string{"US", "GB", "DE", "CH", "FR", "NL"})

		t.Append(
			ident.Ref(g.faker, "EXE", 10),
			ident.Sequential("ORD", g.faker.Int(1, count), 8),
			fund.ID,
			sec.ID,
			sec.ISIN,
			side,
			quantity,
			dec(price, 4),
			gross,
			commission,
			net,
			sec.Currency,
			g.faker.Company(),
			ident.BIC(g.faker, cptyCountry),
			fund.CustodianID,
			tradeDate,
			tradeDate.AddDate(0, 0, 2),
		)
	}

	return t
}
