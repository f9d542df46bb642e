//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dispatch wires the master entity universe and the report
// generators together. A Dispatcher builds the universe lazily on first use
// and reuses it for its entire lifetime, so every generated table across
// repeated calls references the same consistent entity set.
package dispatch

import (
	"math"

	"github.com/quantrail/fundgen/internal/datagen"
	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/reports"
	"github.com/quantrail/fundgen/internal/universe"
)

// Dispatcher owns one universe and one generator, both seeded from a single
// faker. It is not safe for concurrent use; generation is synchronous and
// single-threaded by design.
type Dispatcher struct {
	faker *datagen.Faker
	ucfg  universe.Config

	gen *reports.Generator
	// sessionFunds caches the representative fund chosen per type filter.
	sessionFunds map[string]universe.Fund
}

// New creates a dispatcher. A zero seed means a time-based seed.
func New(seed uint64, ucfg universe.Config) *Dispatcher {
	f := datagen.NewFaker()
	if seed != 0 {
		f = datagen.NewFakerWithSeed(seed)
	}
	return &Dispatcher{
		faker:        f,
		ucfg:         ucfg,
		sessionFunds: make(map[string]universe.Fund),
	}
}

// Universe returns the master entity set, building it on first use.
// Repeated calls return the same cached universe.
func (d *Dispatcher) Universe() *universe.Universe {
	if d.gen == nil {
		u := universe.Build(d.faker, d.ucfg)
		logging.Info().
			Int("funds", len(u.Funds)).
			Int("securities", len(u.Securities)).
			Int("shareholders", len(u.Shareholders)).
			Int("accounts", len(u.Accounts)).
			Msg("Built master entity universe")
		d.gen = reports.NewGenerator(d.faker, u)
	}
	return d.gen.Universe()
}

// SessionFund returns the representative fund used for the given fund type
// filter, selecting one uniformly on first use. ok is false when no fund of
// the requested type exists in the universe.
func (d *Dispatcher) SessionFund(typeFilter string) (universe.Fund, bool) {
	if fund, ok := d.sessionFunds[typeFilter]; ok {
		return fund, true
	}
	candidates := d.Universe().FundsOfType(typeFilter)
	if len(candidates) == 0 {
		return universe.Fund{}, false
	}
	fund := datagen.Choose(d.faker, candidates)
	d.sessionFunds[typeFilter] = fund
	return fund, true
}

// Generate invokes the generators for the requested kinds and returns the
// named tables. Each kind's requested count is the base count scaled by the
// kind's catalog factor range. Duplicate kinds are generated once. When no
// fund matches the type filter, every table comes back empty.
func (d *Dispatcher) Generate(typeFilter string, baseCount int, kinds []reports.Kind) map[reports.Kind]*reports.Table {
	result := make(map[reports.Kind]*reports.Table, len(kinds))

	fund, ok := d.SessionFund(typeFilter)
	if !ok {
		logging.Warn().
			Str("fund_type", typeFilter).
			Msg("No fund matches the requested type; producing empty tables")
		for _, kind := range kinds {
			if _, dup := result[kind]; !dup {
				result[kind] = reports.NewTable(kind.String())
			}
		}
		return result
	}

	logging.Debug().
		Str("fund", fund.ID).
		Str("fund_type", fund.TypeName).
		Int("base_count", baseCount).
		Msg("Generating reports")

	for _, kind := range kinds {
		if _, dup := result[kind]; dup {
			continue
		}
		count := d.scaledCount(baseCount, kind.Definition())
		table := d.gen.Generate(kind, count, fund, typeFilter)
		if table.Empty() {
			logging.Warn().
				Str("report", kind.String()).
				Str("fund", fund.ID).
				Msg("Report produced no rows")
		} else {
			logging.Info().
				Str("report", kind.String()).
				Int("rows", table.RowCount()).
				Msg("Generated report")
		}
		result[kind] = table
	}

	return result
}

// scaledCount applies the kind's factor range to the base count.
func (d *Dispatcher) scaledCount(baseCount int, def reports.Definition) int {
	if def.Snapshot {
		return baseCount
	}
	factor := def.MinFactor
	if def.MaxFactor > def.MinFactor {
		factor = d.faker.Float64(def.MinFactor, def.MaxFactor)
	}
	count := int(math.Round(float64(baseCount) * factor))
	if count < 1 {
		count = 1
	}
	return count
}
