//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package universe builds the master entity set: shareholders, transfer
// agency accounts, distributors, representatives, funds, securities, and
// custodians. A Universe is an explicit context object owned by the caller;
// every report generator draws from one shared Universe so the generated
// tables reference a single internally consistent world.
package universe

import (
	"fmt"
	"time"

	"github.com/quantrail/fundgen/internal/datagen"
	"github.com/quantrail/fundgen/internal/ident"
	"github.com/quantrail/fundgen/internal/refdata"
)

// Config holds the entity counts for a universe build.
type Config struct {
	Shareholders         int
	Distributors         int
	Representatives      int
	Funds                int
	MinSecuritiesPerFund int
	MaxSecuritiesPerFund int
}

// DefaultConfig returns the default universe sizing.
func DefaultConfig() Config {
	return Config{
		Shareholders:         40,
		Distributors:         5,
		Representatives:      15,
		Funds:                8,
		MinSecuritiesPerFund: 8,
		MaxSecuritiesPerFund: 20,
	}
}

// Distributor is a fund distribution partner.
type Distributor struct {
	ID      string
	Name    string
	Country string
	BIC     string
	LEI     string
}

// Representative is a sales representative employed by a distributor.
type Representative struct {
	ID            string
	DistributorID string
	Name          string
}

// Shareholder is an end investor.
type Shareholder struct {
	ID      string
	Type    string
	Name    string
	Country string
	// LEI is empty for individuals.
	LEI string
}

// Account is a transfer agency account: the holding relationship between a
// shareholder and the fund range, intermediated by a distributor and one of
// that distributor's representatives.
type Account struct {
	ID               string
	ShareholderID    string
	DistributorID    string
	RepresentativeID string
	Currency         string
	OpenedOn         time.Time
}

// Fund is an investment fund.
type Fund struct {
	ID                 string
	Name               string
	ISIN               string
	TypeName           string
	LegalStructure     string
	Domicile           string
	BaseCurrency       string
	ManagementCompany  string
	CustodianID        string
	DistributionPolicy string
	Inception          time.Time
	TargetAUM          float64
}

// Type returns the fund's type parameters.
func (f Fund) Type() refdata.FundType {
	ft, _ := refdata.FundTypeByName(f.TypeName)
	return ft
}

// Security is an instrument held by a fund. Non-tradable asset classes carry
// sentinel ISIN, sector, and venue values.
type Security struct {
	ID             string
	ISIN           string
	Name           string
	FundID         string
	AssetClass     refdata.AssetClass
	InstrumentType string
	Currency       string
	Issuer         string
	ExchangeMIC    string
	Sector         string
	SubIndustry    string
}

// Universe is the complete interlinked master entity set.
type Universe struct {
	Distributors    []Distributor
	Representatives []Representative
	Shareholders    []Shareholder
	Accounts        []Account
	Funds           []Fund
	Securities      []Security
	Custodians      []refdata.Custodian
}

var shareholderTypes = []string{"Individual", "Corporate", "Pension Fund", "Trust"}
var shareholderWeights = []int{50, 25, 15, 10}

var strategyNames = map[string][]string{
	"UCITS": {"Global Equity", "European Bond", "Balanced Allocation", "Sustainable Equity", "Emerging Markets"},
	"HEDGE": {"Absolute Return", "Long/Short Equity", "Event Driven", "Global Macro"},
	"PE":    {"Buyout", "Growth Capital", "Secondaries", "Mid-Market"},
	"MMF":   {"USD Liquidity", "EUR Liquidity", "Treasury Reserve"},
	"REIF":  {"Core Property", "European Logistics", "Urban Office"},
}

// Build generates a consistent universe from the given faker and sizing.
// Generation is ordered leaf-first: distributors, then representatives,
// then shareholders and their accounts, then funds and their securities.
func Build(f *datagen.Faker, cfg Config) *Universe {
	// Account linkage requires every distributor to have at least one
	// representative, so undersized configs are raised to the round-robin
	// minimum.
	if cfg.Representatives < cfg.Distributors {
		cfg.Representatives = cfg.Distributors
	}

	u := &Universe{Custodians: refdata.Custodians}

	for i := 1; i <= cfg.Distributors; i++ {
		country := datagen.Choose(f, refdata.Countries)
		u.Distributors = append(u.Distributors, Distributor{
			ID:      ident.Sequential("DIST", i, 4),
			Name:    f.Company() + " Distribution",
			Country: country.Code,
			BIC:     ident.BIC(f, country.Code),
			LEI:     ident.LEI(f),
		})
	}

	for i := 1; i <= cfg.Representatives; i++ {
		// The first pass assigns representatives round-robin so every
		// distributor has at least one; the rest land randomly.
		var dist Distributor
		if i <= len(u.Distributors) {
			dist = u.Distributors[i-1]
		} else {
			dist = datagen.Choose(f, u.Distributors)
		}
		u.Representatives = append(u.Representatives, Representative{
			ID:            ident.Sequential("REP", i, 4),
			DistributorID: dist.ID,
			Name:          f.Name(),
		})
	}

	accountSeq := 1
	for i := 1; i <= cfg.Shareholders; i++ {
		shType := datagen.ChooseWeighted(f, shareholderTypes, shareholderWeights)
		country := datagen.Choose(f, refdata.Countries)

		sh := Shareholder{
			ID:      ident.Sequential("SH", i, 5),
			Type:    shType,
			Country: country.Code,
		}
		switch shType {
		case "Individual":
			sh.Name = f.Name()
		case "Pension Fund":
			sh.Name = f.Company() + " Pension Scheme"
			sh.LEI = ident.LEI(f)
		case "Trust":
			sh.Name = f.LastName() + " Family Trust"
			sh.LEI = ident.LEI(f)
		default:
			sh.Name = f.Company()
			sh.LEI = ident.LEI(f)
		}
		u.Shareholders = append(u.Shareholders, sh)

		// One to three accounts per shareholder. The representative is
		// always drawn from the account's own distributor.
		numAccounts := f.Int(1, 3)
		for a := 0; a < numAccounts; a++ {
			dist := datagen.Choose(f, u.Distributors)
			rep := datagen.Choose(f, u.RepresentativesOf(dist.ID))
			u.Accounts = append(u.Accounts, Account{
				ID:               ident.Sequential("TA", accountSeq, 6),
				ShareholderID:    sh.ID,
				DistributorID:    dist.ID,
				RepresentativeID: rep.ID,
				Currency:         datagen.Choose(f, refdata.Currencies).Code,
				OpenedOn: f.Date(
					time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
			})
			accountSeq++
		}
	}

	secSeq := 1
	for i := 1; i <= cfg.Funds; i++ {
		ft := datagen.Choose(f, refdata.FundTypes)
		domicile := datagen.Choose(f, refdata.FundDomiciles)
		manager := f.Company() + " Asset Management"
		strategy := datagen.Choose(f, strategyNames[ft.Code])
		policy := "ACC"
		if f.Bool() {
			policy = "DIST"
		}

		fund := Fund{
			ID:                 ident.Sequential("FND", i, 4),
			Name:               manager + " " + strategy + " Fund",
			ISIN:               ident.ISIN(f, domicile.Code),
			TypeName:           ft.Name,
			LegalStructure:     datagen.Choose(f, ft.LegalStructures),
			Domicile:           domicile.Code,
			BaseCurrency:       datagen.Choose(f, []string{"USD", "EUR", "GBP", "CHF"}),
			ManagementCompany:  manager,
			CustodianID:        datagen.Choose(f, refdata.Custodians).ID,
			DistributionPolicy: policy,
			Inception: f.Date(
				time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)),
			TargetAUM: f.Float64(ft.AUMMin, ft.AUMMax),
		}
		u.Funds = append(u.Funds, fund)

		numSecs := f.Int(cfg.MinSecuritiesPerFund, cfg.MaxSecuritiesPerFund)
		for s := 0; s < numSecs; s++ {
			u.Securities = append(u.Securities, buildSecurity(f, fund, ft, secSeq))
			secSeq++
		}
	}

	return u
}

// buildSecurity creates one security for a fund, with asset class drawn from
// the fund type's allowed set and class-specific naming and classification.
func buildSecurity(f *datagen.Faker, fund Fund, ft refdata.FundType, seq int) Security {
	class := datagen.Choose(f, ft.AssetClasses)
	issuer := f.Company()

	sec := Security{
		ID:             ident.Sequential("SEC", seq, 6),
		FundID:         fund.ID,
		AssetClass:     class,
		InstrumentType: refdata.InstrumentTypes[class],
		Issuer:         issuer,
		Currency:       fund.BaseCurrency,
		ISIN:           refdata.NoISIN,
		ExchangeMIC:    refdata.OffBook,
		Sector:         refdata.NoSector,
		SubIndustry:    refdata.NoSector,
	}
	if f.Int(1, 100) > 70 {
		sec.Currency = datagen.Choose(f, refdata.Currencies).Code
	}
	if class.Tradable() {
		country := datagen.Choose(f, refdata.Countries)
		sec.ISIN = ident.ISIN(f, country.Code)
	}

	switch class {
	case refdata.AssetEquity:
		sector := datagen.Choose(f, refdata.Sectors)
		sec.Name = issuer
		sec.Sector = sector.Name
		sec.SubIndustry = datagen.Choose(f, sector.SubIndustries)
		sec.ExchangeMIC = datagen.Choose(f, refdata.Exchanges).MIC
	case refdata.AssetGovBond:
		sec.Issuer = datagen.Choose(f, refdata.Countries).Name + " Treasury"
		sec.Name = sec.Issuer + " " + bondCoupon(f)
	case refdata.AssetCorpBond:
		sec.Name = issuer + " " + bondCoupon(f)
	case refdata.AssetMoneyMarket:
		sec.Name = issuer + " CP " + f.Digits(2) + "D"
	case refdata.AssetCash:
		sec.Name = "Cash " + sec.Currency
		sec.Issuer = "-"
	case refdata.AssetPrivateEquity:
		sec.Name = issuer + " Holding"
	case refdata.AssetRealEstate:
		sec.Name = f.City() + " Property Portfolio"
		sec.Issuer = "-"
	}

	return sec
}

func bondCoupon(f *datagen.Faker) string {
	rate := float64(f.Int(50, 650)) / 100
	year := f.Int(2026, 2040)
	return fmt.Sprintf("%.2f%% %d", rate, year)
}

// SecuritiesOf returns the securities associated with a fund. The result may
// be empty; callers are expected to handle that by producing empty tables.
func (u *Universe) SecuritiesOf(fundID string) []Security {
	var out []Security
	for _, s := range u.Securities {
		if s.FundID == fundID {
			out = append(out, s)
		}
	}
	return out
}

// FundsOfType returns funds of the given type name; an empty filter returns
// all funds.
func (u *Universe) FundsOfType(typeName string) []Fund {
	if typeName == "" {
		return u.Funds
	}
	var out []Fund
	for _, f := range u.Funds {
		if f.TypeName == typeName {
			out = append(out, f)
		}
	}
	return out
}

// RepresentativesOf returns the representatives employed by a distributor.
func (u *Universe) RepresentativesOf(distributorID string) []Representative {
	var out []Representative
	for _, r := range u.Representatives {
		if r.DistributorID == distributorID {
			out = append(out, r)
		}
	}
	return out
}

// AccountByID looks up a transfer agency account.
func (u *Universe) AccountByID(id string) (Account, bool) {
	for _, a := range u.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// ShareholderByID looks up a shareholder.
func (u *Universe) ShareholderByID(id string) (Shareholder, bool) {
	for _, s := range u.Shareholders {
		if s.ID == id {
			return s, true
		}
	}
	return Shareholder{}, false
}

// CustodianByID looks up a custodian.
func (u *Universe) CustodianByID(id string) (refdata.Custodian, bool) {
	for _, c := range u.Custodians {
		if c.ID == id {
			return c, true
		}
	}
	return refdata.Custodian{}, false
}
