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
	"fmt"

	"github.com/quantrail/fundgen/internal/datagen"
	"github.com/quantrail/fundgen/internal/ident"
	"github.com/quantrail/fundgen/internal/universe"
)

// FundCharacteristics generates the static profile table: one row per fund
// matching the type filter (all funds when the filter is empty).
func (g *Generator) FundCharacteristics(typeFilter string) *Table {
	t := NewTable("fund_characteristics",
		"fund_id", "fund_name", "isin", "fund_type", "legal_structure",
		"domicile", "inception_date", "base_currency", "management_company",
		"custodian_id", "distribution_policy", "expense_ratio_pct",
		"target_aum", "nav_frequency",
	)

	for _, fund := range g.u.FundsOfType(typeFilter) {
		t.Append(
			fund.ID,
			fund.Name,
			fund.ISIN,
			fund.TypeName,
			fund.LegalStructure,
			fund.Domicile,
			fund.Inception,
			fund.BaseCurrency,
			fund.ManagementCompany,
			fund.CustodianID,
			fund.DistributionPolicy,
			dec(fund.Type().ExpenseRatio*100, 4),
			money(fund.TargetAUM),
			"DAILY",
		)
	}

	return t
}

var actionTypes = []string{"CASH_DIVIDEND", "STOCK_SPLIT", "RIGHTS_ISSUE", "MERGER", "NAME_CHANGE"}
var actionWeights = []int{55, 15, 12, 10, 8}

// CorporateActions generates count corporate action events on the fund's
// listed securities: dividends carry an amount, splits a ratio, and the
// date ladder keeps ex <= record <= pay.
func (g *Generator) CorporateActions(count int, fund universe.Fund) *Table {
	t := NewTable("corporate_actions",
		"action_id", "security_id", "isin", "security_name", "action_type",
		"announcement_date", "ex_date", "record_date", "pay_date",
		"ratio", "amount", "currency", "status",
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

	for i := 0; i < count; i++ {
		sec := datagen.Choose(g.faker, listed)
		actionType := datagen.ChooseWeighted(g.faker, actionTypes, actionWeights)

		exDate := g.faker.Date(seriesStart, seriesStart.AddDate(1, 0, 0))
		announce := exDate.AddDate(0, 0, -g.faker.Int(10, 40))
		record := exDate.AddDate(0, 0, 1)
		pay := exDate.AddDate(0, 0, g.faker.Int(7, 21))

		var ratio, amount any
		switch actionType {
		case "CASH_DIVIDEND":
			amount = money(g.faker.Float64(0.05, 8))
		case "STOCK_SPLIT":
			ratio = fmt.Sprintf("%d:1", g.faker.Int(2, 10))
		case "RIGHTS_ISSUE":
			ratio = fmt.Sprintf("1:%d", g.faker.Int(2, 10))
		}

		status := datagen.ChooseWeighted(g.faker,
			[]string{"CONFIRMED", "ANNOUNCED", "PAID"}, []int{40, 25, 35})

		t.Append(
			ident.Sequential("CA", i+1, 6),
			sec.ID,
			sec.ISIN,
			sec.Name,
			actionType,
			announce,
			exDate,
			record,
			pay,
			ratio,
			amount,
			sec.Currency,
			status,
		)
	}

	return t
}
