//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package universe

import (
	"testing"

	"github.com/quantrail/fundgen/internal/datagen"
	"github.com/quantrail/fundgen/internal/refdata"
)

func buildTest(t *testing.T, seed uint64) *Universe {
	t.Helper()
	return Build(datagen.NewFakerWithSeed(seed), DefaultConfig())
}

func TestBuildCounts(t *testing.T) {
	cfg := DefaultConfig()
	u := buildTest(t, 1)

	if len(u.Distributors) != cfg.Distributors {
		t.Errorf("got %d distributors, want %d", len(u.Distributors), cfg.Distributors)
	}
	if len(u.Representatives) != cfg.Representatives {
		t.Errorf("got %d representatives, want %d", len(u.Representatives), cfg.Representatives)
	}
	if len(u.Shareholders) != cfg.Shareholders {
		t.Errorf("got %d shareholders, want %d", len(u.Shareholders), cfg.Shareholders)
	}
	if len(u.Funds) != cfg.Funds {
		t.Errorf("got %d funds, want %d", len(u.Funds), cfg.Funds)
	}

	// Every shareholder opens between one and three accounts
	if len(u.Accounts) < cfg.Shareholders || len(u.Accounts) > 3*cfg.Shareholders {
		t.Errorf("got %d accounts for %d shareholders", len(u.Accounts), cfg.Shareholders)
	}

	minSecs := cfg.Funds * cfg.MinSecuritiesPerFund
	maxSecs := cfg.Funds * cfg.MaxSecuritiesPerFund
	if len(u.Securities) < minSecs || len(u.Securities) > maxSecs {
		t.Errorf("got %d securities, want between %d and %d", len(u.Securities), minSecs, maxSecs)
	}
}

func TestBuildDeterministic(t *testing.T) {
	u1 := buildTest(t, 42)
	u2 := buildTest(t, 42)

	if len(u1.Accounts) != len(u2.Accounts) {
		t.Fatalf("same seed produced different account counts: %d != %d",
			len(u1.Accounts), len(u2.Accounts))
	}
	for i := range u1.Funds {
		if u1.Funds[i] != u2.Funds[i] {
			t.Errorf("same seed produced different fund %d: %+v != %+v",
				i, u1.Funds[i], u2.Funds[i])
		}
	}
	for i := range u1.Shareholders {
		if u1.Shareholders[i] != u2.Shareholders[i] {
			t.Errorf("same seed produced different shareholder %d", i)
		}
	}
}

func TestEveryDistributorHasRepresentative(t *testing.T) {
	u := buildTest(t, 7)
	for _, d := range u.Distributors {
		if len(u.RepresentativesOf(d.ID)) == 0 {
			t.Errorf("distributor %s has no representatives", d.ID)
		}
	}
}

func TestAccountReferentialIntegrity(t *testing.T) {
	u := buildTest(t, 7)

	for _, a := range u.Accounts {
		if _, ok := u.ShareholderByID(a.ShareholderID); !ok {
			t.Errorf("account %s references unknown shareholder %s", a.ID, a.ShareholderID)
		}

		// The representative must belong to the account's distributor
		var rep *Representative
		for i := range u.Representatives {
			if u.Representatives[i].ID == a.RepresentativeID {
				rep = &u.Representatives[i]
				break
			}
		}
		if rep == nil {
			t.Errorf("account %s references unknown representative %s", a.ID, a.RepresentativeID)
			continue
		}
		if rep.DistributorID != a.DistributorID {
			t.Errorf("account %s representative %s belongs to %s, not account distributor %s",
				a.ID, rep.ID, rep.DistributorID, a.DistributorID)
		}
	}
}

func TestFundConsistency(t *testing.T) {
	u := buildTest(t, 11)

	for _, fund := range u.Funds {
		ft := fund.Type()
		if ft.Name == "" {
			t.Errorf("fund %s has unknown type %q", fund.ID, fund.TypeName)
			continue
		}
		if fund.TargetAUM < ft.AUMMin || fund.TargetAUM > ft.AUMMax {
			t.Errorf("fund %s AUM %.0f outside type bounds [%.0f, %.0f]",
				fund.ID, fund.TargetAUM, ft.AUMMin, ft.AUMMax)
		}
		if _, ok := u.CustodianByID(fund.CustodianID); !ok {
			t.Errorf("fund %s references unknown custodian %s", fund.ID, fund.CustodianID)
		}
		if fund.DistributionPolicy != "ACC" && fund.DistributionPolicy != "DIST" {
			t.Errorf("fund %s has invalid distribution policy %q", fund.ID, fund.DistributionPolicy)
		}

		structureOK := false
		for _, ls := range ft.LegalStructures {
			if fund.LegalStructure == ls {
				structureOK = true
			}
		}
		if !structureOK {
			t.Errorf("fund %s legal structure %q not allowed for %s",
				fund.ID, fund.LegalStructure, ft.Name)
		}
	}
}

func TestSecurityClassesMatchFundType(t *testing.T) {
	u := buildTest(t, 13)

	for _, fund := range u.Funds {
		ft := fund.Type()
		allowed := map[refdata.AssetClass]bool{}
		for _, c := range ft.AssetClasses {
			allowed[c] = true
		}

		secs := u.SecuritiesOf(fund.ID)
		if len(secs) == 0 {
			t.Errorf("fund %s has no securities", fund.ID)
		}
		for _, s := range secs {
			if !allowed[s.AssetClass] {
				t.Errorf("security %s class %s not allowed for fund type %s",
					s.ID, s.AssetClass, ft.Name)
			}
		}
	}
}

func TestSecuritySentinels(t *testing.T) {
	u := buildTest(t, 13)

	for _, s := range u.Securities {
		if s.AssetClass.Tradable() {
			if s.ISIN == refdata.NoISIN {
				t.Errorf("tradable security %s has sentinel ISIN", s.ID)
			}
			if len(s.ISIN) != 12 {
				t.Errorf("security %s ISIN %q has wrong length", s.ID, s.ISIN)
			}
		} else {
			if s.ISIN != refdata.NoISIN {
				t.Errorf("non-tradable security %s has ISIN %q, want sentinel", s.ID, s.ISIN)
			}
		}
		if s.AssetClass != refdata.AssetEquity && s.Sector != refdata.NoSector {
			t.Errorf("non-equity security %s has sector %q, want sentinel", s.ID, s.Sector)
		}
	}
}

func TestShareholderLEI(t *testing.T) {
	u := buildTest(t, 17)

	for _, sh := range u.Shareholders {
		if sh.Type == "Individual" {
			if sh.LEI != "" {
				t.Errorf("individual %s has LEI %q", sh.ID, sh.LEI)
			}
		} else if len(sh.LEI) != 20 {
			t.Errorf("%s shareholder %s has LEI %q, want 20 characters", sh.Type, sh.ID, sh.LEI)
		}
	}
}

func TestFundsOfType(t *testing.T) {
	u := buildTest(t, 19)

	if got := u.FundsOfType(""); len(got) != len(u.Funds) {
		t.Errorf("empty filter returned %d funds, want all %d", len(got), len(u.Funds))
	}

	for _, fund := range u.FundsOfType("Hedge Fund") {
		if fund.TypeName != "Hedge Fund" {
			t.Errorf("filter returned fund of type %q", fund.TypeName)
		}
	}

	if got := u.FundsOfType("No Such Type"); len(got) != 0 {
		t.Errorf("unknown type filter returned %d funds", len(got))
	}
}

func TestUndersizedRepresentativeConfig(t *testing.T) {
	cfg := Config{
		Shareholders:         10,
		Distributors:         4,
		Representatives:      1,
		Funds:                2,
		MinSecuritiesPerFund: 2,
		MaxSecuritiesPerFund: 4,
	}
	u := Build(datagen.NewFakerWithSeed(3), cfg)

	// The representative count is raised so every distributor gets one.
	if len(u.Representatives) != cfg.Distributors {
		t.Errorf("got %d representatives for %d distributors",
			len(u.Representatives), cfg.Distributors)
	}

	for _, a := range u.Accounts {
		if a.RepresentativeID == "" {
			t.Errorf("account %s has no representative", a.ID)
			continue
		}
		found := false
		for _, rep := range u.Representatives {
			if rep.ID == a.RepresentativeID {
				found = true
				if rep.DistributorID != a.DistributorID {
					t.Errorf("account %s: representative %s belongs to %s, account to %s",
						a.ID, rep.ID, rep.DistributorID, a.DistributorID)
				}
			}
		}
		if !found {
			t.Errorf("account %s references unknown representative %s", a.ID, a.RepresentativeID)
		}
	}
}
