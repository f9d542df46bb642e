//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package refdata holds the static reference tables the generators draw
// from: fund types and their statistical parameters, currencies, countries,
// sectors, exchanges, custodians, and the fund chart of accounts.
package refdata

// AssetClass identifies the broad asset class of a security.
type AssetClass string

// Asset classes available to fund portfolios.
const (
	AssetEquity        AssetClass = "Equity"
	AssetGovBond       AssetClass = "Government Bond"
	AssetCorpBond      AssetClass = "Corporate Bond"
	AssetMoneyMarket   AssetClass = "Money Market Instrument"
	AssetCash          AssetClass = "Cash"
	AssetPrivateEquity AssetClass = "Private Equity"
	AssetRealEstate    AssetClass = "Real Estate"
)

// Tradable reports whether securities of this asset class trade on a venue
// and carry an ISIN. Cash positions and private holdings do not.
func (a AssetClass) Tradable() bool {
	switch a {
	case AssetCash, AssetPrivateEquity, AssetRealEstate:
		return false
	}
	return true
}

// Sentinel values for fields that do not apply to an asset class.
const (
	NoISIN   = "N/A"
	NoSector = "Unclassified"
	OffBook  = "XOFF"
)

// FundType describes a fund category and the simplified statistical
// parameters used to scale its synthetic data.
type FundType struct {
	Name            string
	Code            string
	AssetClasses    []AssetClass
	LegalStructures []string
	// TradesPerMonthMin/Max bound the expected transaction frequency.
	TradesPerMonthMin int
	TradesPerMonthMax int
	// ExpectedReturn is the annualized drift of the type's price series.
	ExpectedReturn float64
	// DailyVolatility is the daily sigma of the type's random walks.
	DailyVolatility float64
	// ExpenseRatio is the annual total expense ratio.
	ExpenseRatio float64
	// AUMMin/Max bound the target assets under management.
	AUMMin float64
	AUMMax float64
}

// FundTypes is the closed catalog of supported fund categories.
var FundTypes = []FundType{
	{
		Name:              "Traditional UCITS",
		Code:              "UCITS",
		AssetClasses:      []AssetClass{AssetEquity, AssetGovBond, AssetCorpBond, AssetCash},
		LegalStructures:   []string{"SICAV", "FCP", "ICAV", "OEIC"},
		TradesPerMonthMin: 20,
		TradesPerMonthMax: 120,
		ExpectedReturn:    0.06,
		DailyVolatility:   0.010,
		ExpenseRatio:      0.0125,
		AUMMin:            50_000_000,
		AUMMax:            2_000_000_000,
	},
	{
		Name:              "Hedge Fund",
		Code:              "HEDGE",
		AssetClasses:      []AssetClass{AssetEquity, AssetCorpBond, AssetCash},
		LegalStructures:   []string{"SCSp", "LP", "Unit Trust"},
		TradesPerMonthMin: 80,
		TradesPerMonthMax: 400,
		ExpectedReturn:    0.09,
		DailyVolatility:   0.018,
		ExpenseRatio:      0.02,
		AUMMin:            100_000_000,
		AUMMax:            5_000_000_000,
	},
	{
		Name:              "Private Equity",
		Code:              "PE",
		AssetClasses:      []AssetClass{AssetPrivateEquity, AssetCash},
		LegalStructures:   []string{"SCSp", "LP"},
		TradesPerMonthMin: 1,
		TradesPerMonthMax: 6,
		ExpectedReturn:    0.12,
		DailyVolatility:   0.004,
		ExpenseRatio:      0.0175,
		AUMMin:            250_000_000,
		AUMMax:            10_000_000_000,
	},
	{
		Name:              "Money Market",
		Code:              "MMF",
		AssetClasses:      []AssetClass{AssetMoneyMarket, AssetGovBond, AssetCash},
		LegalStructures:   []string{"SICAV", "FCP"},
		TradesPerMonthMin: 40,
		TradesPerMonthMax: 200,
		ExpectedReturn:    0.03,
		DailyVolatility:   0.0008,
		ExpenseRatio:      0.0020,
		AUMMin:            500_000_000,
		AUMMax:            20_000_000_000,
	},
	{
		Name:              "Real Estate",
		Code:              "REIF",
		AssetClasses:      []AssetClass{AssetRealEstate, AssetCash},
		LegalStructures:   []string{"SICAV", "SCSp", "Unit Trust"},
		TradesPerMonthMin: 1,
		TradesPerMonthMax: 10,
		ExpectedReturn:    0.07,
		DailyVolatility:   0.006,
		ExpenseRatio:      0.0150,
		AUMMin:            100_000_000,
		AUMMax:            3_000_000_000,
	},
}

// FundTypeByName looks up a fund type by its display name or code.
func FundTypeByName(name string) (FundType, bool) {
	for _, ft := range FundTypes {
		if ft.Name == name || ft.Code == name {
			return ft, true
		}
	}
	return FundType{}, false
}

// FundTypeNames returns the display names of all fund types.
func FundTypeNames() []string {
	names := make([]string, 0, len(FundTypes))
	for _, ft := range FundTypes {
		names = append(names, ft.Name)
	}
	return names
}

// Currency is a supported base or trading currency. USDRate is the
// indicative starting rate (1 USD = USDRate units) used to seed FX walks.
type Currency struct {
	Code    string
	Name    string
	USDRate float64
}

// Currencies supported across the generated universe. USD is the FX base.
var Currencies = []Currency{
	{"USD", "US Dollar", 1.0},
	{"EUR", "Euro", 0.92},
	{"GBP", "Pound Sterling", 0.79},
	{"CHF", "Swiss Franc", 0.88},
	{"JPY", "Japanese Yen", 148.50},
	{"SEK", "Swedish Krona", 10.45},
	{"DKK", "Danish Krone", 6.87},
	{"NOK", "Norwegian Krone", 10.60},
	{"SGD", "Singapore Dollar", 1.34},
	{"HKD", "Hong Kong Dollar", 7.82},
	{"AUD", "Australian Dollar", 1.52},
	{"CAD", "Canadian Dollar", 1.36},
}

// CurrencyCodes returns all supported currency codes.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(Currencies))
	for _, c := range Currencies {
		codes = append(codes, c.Code)
	}
	return codes
}

// Country is a shareholder or issuer domicile.
type Country struct {
	Code string
	Name string
}

// Countries used for shareholders, distributors, and issuers.
var Countries = []Country{
	{"US", "United States"},
	{"GB", "United Kingdom"},
	{"DE", "Germany"},
	{"FR", "France"},
	{"CH", "Switzerland"},
	{"LU", "Luxembourg"},
	{"IE", "Ireland"},
	{"NL", "Netherlands"},
	{"IT", "Italy"},
	{"ES", "Spain"},
	{"SE", "Sweden"},
	{"DK", "Denmark"},
	{"NO", "Norway"},
	{"SG", "Singapore"},
	{"HK", "Hong Kong"},
	{"JP", "Japan"},
	{"AU", "Australia"},
	{"CA", "Canada"},
}

// FundDomiciles are the countries funds are incorporated in.
var FundDomiciles = []Country{
	{"LU", "Luxembourg"},
	{"IE", "Ireland"},
	{"FR", "France"},
	{"DE", "Germany"},
	{"GB", "United Kingdom"},
}

// Exchange is a trading venue, identified by its MIC.
type Exchange struct {
	MIC     string
	Name    string
	Country string
}

// Exchanges are the trading venues assigned to listed securities.
var Exchanges = []Exchange{
	{"XNYS", "New York Stock Exchange", "US"},
	{"XNAS", "NASDAQ", "US"},
	{"XLON", "London Stock Exchange", "GB"},
	{"XETR", "Deutsche Boerse Xetra", "DE"},
	{"XPAR", "Euronext Paris", "FR"},
	{"XAMS", "Euronext Amsterdam", "NL"},
	{"XSWX", "SIX Swiss Exchange", "CH"},
	{"XMIL", "Borsa Italiana", "IT"},
	{"XTKS", "Tokyo Stock Exchange", "JP"},
	{"XHKG", "Hong Kong Stock Exchange", "HK"},
}

// Sector is a GICS-style sector with its sub-industries.
type Sector struct {
	Name          string
	SubIndustries []string
}

// Sectors classify equity securities.
var Sectors = []Sector{
	{"Energy", []string{"Oil & Gas Exploration", "Oil & Gas Refining", "Energy Equipment"}},
	{"Materials", []string{"Chemicals", "Metals & Mining", "Construction Materials"}},
	{"Industrials", []string{"Aerospace & Defense", "Machinery", "Transportation"}},
	{"Consumer Discretionary", []string{"Automobiles", "Retailing", "Hotels & Leisure"}},
	{"Consumer Staples", []string{"Food Products", "Beverages", "Household Products"}},
	{"Health Care", []string{"Pharmaceuticals", "Biotechnology", "Health Care Equipment"}},
	{"Financials", []string{"Banks", "Insurance", "Capital Markets"}},
	{"Information Technology", []string{"Software", "Semiconductors", "IT Services"}},
	{"Communication Services", []string{"Telecom", "Media", "Interactive Media"}},
	{"Utilities", []string{"Electric Utilities", "Gas Utilities", "Water Utilities"}},
	{"Real Estate", []string{"REITs", "Real Estate Management"}},
}

// InstrumentTypes maps an asset class to the instrument type label used on
// security records.
var InstrumentTypes = map[AssetClass]string{
	AssetEquity:        "Common Stock",
	AssetGovBond:       "Sovereign Bond",
	AssetCorpBond:      "Corporate Bond",
	AssetMoneyMarket:   "Commercial Paper",
	AssetCash:          "Cash Position",
	AssetPrivateEquity: "Unlisted Participation",
	AssetRealEstate:    "Direct Property",
}

// Custodian is a static safekeeping bank.
type Custodian struct {
	ID      string
	Name    string
	BIC     string
	LEI     string
	Country string
}

// Custodians is the fixed set of custody banks funds are assigned to.
var Custodians = []Custodian{
	{"CUST-001", "Northgate Custody Bank", "NGCBLULLXXX", "549300NGATECSTDY0001", "LU"},
	{"CUST-002", "Meridian Trust & Safekeeping", "MRDTIE2DXXX", "549300MERIDIANTR0002", "IE"},
	{"CUST-003", "Helvetia Global Custody", "HLVGCHZHXXX", "549300HELVETIAGC0003", "CH"},
	{"CUST-004", "Atlantic Securities Services", "ATLSUS33XXX", "549300ATLANTICSS0004", "US"},
	{"CUST-005", "Albion Asset Servicing", "ALBNGB2LXXX", "549300ALBIONASSV0005", "GB"},
}

// AccountSide is the normal balance side of a ledger account.
type AccountSide string

// Normal balance sides.
const (
	Debit  AccountSide = "DEBIT"
	Credit AccountSide = "CREDIT"
)

// LedgerAccount is one line of the fund chart of accounts.
type LedgerAccount struct {
	Code       string
	Name       string
	Category   string
	NormalSide AccountSide
	// Weight scales the account's typical magnitude relative to AUM.
	Weight float64
}

// ChartOfAccounts is the fund accounting chart used by the trial balance.
var ChartOfAccounts = []LedgerAccount{
	{"1000", "Cash and Cash Equivalents", "Asset", Debit, 0.05},
	{"1100", "Investments at Market Value", "Asset", Debit, 0.95},
	{"1200", "Receivable for Investments Sold", "Asset", Debit, 0.01},
	{"1300", "Subscriptions Receivable", "Asset", Debit, 0.005},
	{"1400", "Dividend Income Receivable", "Asset", Debit, 0.002},
	{"1500", "Accrued Interest Receivable", "Asset", Debit, 0.002},
	{"2000", "Payable for Investments Purchased", "Liability", Credit, 0.01},
	{"2100", "Redemptions Payable", "Liability", Credit, 0.004},
	{"2200", "Accrued Management Fees", "Liability", Credit, 0.0015},
	{"2300", "Accrued Audit and Legal Fees", "Liability", Credit, 0.0003},
	{"3000", "Net Assets Attributable to Shareholders", "Capital", Credit, 0.98},
	{"4000", "Dividend Income", "Income", Credit, 0.01},
	{"4100", "Interest Income", "Income", Credit, 0.008},
	{"4200", "Net Realized Gain on Investments", "Income", Credit, 0.02},
	{"5000", "Management Fee Expense", "Expense", Debit, 0.0015},
	{"5100", "Custody Fee Expense", "Expense", Debit, 0.0003},
	{"5200", "Audit Fee Expense", "Expense", Debit, 0.0001},
	{"5300", "Transfer Agency Fee Expense", "Expense", Debit, 0.0002},
}
