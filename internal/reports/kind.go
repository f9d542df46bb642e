//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

// Kind identifies a report type. The set is closed: report-name strings are
// resolved to a Kind once at the input boundary, so an unrecognized name can
// never reach a generator.
type Kind int

// Report kinds.
const (
	KindFinancialStatements Kind = iota
	KindTransactions
	KindPortfolioHoldings
	KindCashActivity
	KindRegulatoryTransactions
	KindTradeOrders
	KindExecutedTrades
	KindDailyPrices
	KindFundCharacteristics
	KindDailyNAV
	KindCustodyHoldings
	KindTrialBalance
	KindCorporateActions
	KindFXRates

	numKinds // must stay last
)

// Definition describes a catalog entry: the table name, a description, and
// the factor range applied to the caller's base record count. Time-series
// kinds read the scaled count as a number of days, periodic kinds as a
// number of reporting periods, event kinds as a target row count; snapshot kinds
// produce their natural size.
type Definition struct {
	Kind        Kind
	Name        string
	Description string
	MinFactor   float64
	MaxFactor   float64
	Snapshot    bool
}

var catalog = [numKinds]Definition{
	KindFinancialStatements: {
		Kind: KindFinancialStatements, Name: "financial_statements",
		Description: "Monthly income statement and balance sheet lines, AUM-scaled",
		MinFactor:   1, MaxFactor: 1,
	},
	KindTransactions: {
		Kind: KindTransactions, Name: "transactions",
		Description: "Transfer agency transactions on shareholder accounts",
		MinFactor:   5, MaxFactor: 10,
	},
	KindPortfolioHoldings: {
		Kind: KindPortfolioHoldings, Name: "portfolio_holdings",
		Description: "Position snapshot of the selected fund's securities",
		MinFactor:   1, MaxFactor: 1, Snapshot: true,
	},
	KindCashActivity: {
		Kind: KindCashActivity, Name: "cash_activity",
		Description: "Dated cash ledger entries with running balances",
		MinFactor:   3, MaxFactor: 6,
	},
	KindRegulatoryTransactions: {
		Kind: KindRegulatoryTransactions, Name: "regulatory_transactions",
		Description: "MiFIR-style transaction reports for listed instruments",
		MinFactor:   2, MaxFactor: 4,
	},
	KindTradeOrders: {
		Kind: KindTradeOrders, Name: "trade_orders",
		Description: "Front office order blotter entries",
		MinFactor:   2, MaxFactor: 5,
	},
	KindExecutedTrades: {
		Kind: KindExecutedTrades, Name: "executed_trades",
		Description: "Executed fills with commissions and settlement dates",
		MinFactor:   2, MaxFactor: 5,
	},
	KindDailyPrices: {
		Kind: KindDailyPrices, Name: "daily_prices",
		Description: "Daily close prices per security (bounded random walk)",
		MinFactor:   1, MaxFactor: 1,
	},
	KindFundCharacteristics: {
		Kind: KindFundCharacteristics, Name: "fund_characteristics",
		Description: "Static fund profile, one row per matching fund",
		MinFactor:   1, MaxFactor: 1, Snapshot: true,
	},
	KindDailyNAV: {
		Kind: KindDailyNAV, Name: "daily_nav",
		Description: "Daily NAV per share and total net assets",
		MinFactor:   1, MaxFactor: 1,
	},
	KindCustodyHoldings: {
		Kind: KindCustodyHoldings, Name: "custody_holdings",
		Description: "Safekeeping positions at the fund's custodian",
		MinFactor:   1, MaxFactor: 1, Snapshot: true,
	},
	KindTrialBalance: {
		Kind: KindTrialBalance, Name: "trial_balance",
		Description: "Month-end double-entry trial balance per ledger account",
		MinFactor:   1, MaxFactor: 1,
	},
	KindCorporateActions: {
		Kind: KindCorporateActions, Name: "corporate_actions",
		Description: "Dividends, splits, and other corporate events",
		MinFactor:   0.5, MaxFactor: 1,
	},
	KindFXRates: {
		Kind: KindFXRates, Name: "fx_rates",
		Description: "Daily USD exchange rates per currency (random walk)",
		MinFactor:   1, MaxFactor: 1,
	},
}

// String returns the report's table name.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return catalog[k].Name
}

// Definition returns the catalog entry for the kind.
func (k Kind) Definition() Definition {
	return catalog[k]
}

// ParseKind resolves a report name to its Kind. Unknown names return
// ok=false; callers log a warning and drop the name.
func ParseKind(name string) (Kind, bool) {
	for _, def := range catalog {
		if def.Name == name {
			return def.Kind, true
		}
	}
	return 0, false
}

// AllKinds returns every kind in catalog order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Catalog returns the full report catalog in order.
func Catalog() []Definition {
	return catalog[:]
}
