package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundgen/internal/db"
	"github.com/quantrail/fundgen/internal/dispatch"
	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/refdata"
	"github.com/quantrail/fundgen/internal/reports"
	"github.com/quantrail/fundgen/internal/sink"
	"github.com/quantrail/fundgen/internal/universe"
)

var (
	genFundType string
	genReports  []string
	genCount    int
	genTruncate bool
	genSeed     uint64
	genOutput   string
	genUpload   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic fund datasets",
	Long: `Generate synthetic fund-management datasets and upload them to the
analytical database, export them as CSV files, or both.

Example:
  fundgen generate --fund-type "Hedge Fund" --reports transactions,daily_nav \
      --count 30 --seed 42 --connection "postgres://..."`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genFundType, "fund-type", "",
		"restrict generation to one fund type (default: all types)")
	generateCmd.Flags().StringSliceVar(&genReports, "reports", nil,
		"comma-separated report kinds to generate (default: all)")
	generateCmd.Flags().IntVar(&genCount, "count", 0,
		"base row count per report before per-kind scaling (default: 12)")
	generateCmd.Flags().BoolVar(&genTruncate, "truncate", true,
		"clear each target table before inserting")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"random seed for reproducible generation (0 = time-based)")
	generateCmd.Flags().StringVar(&genOutput, "output", "",
		"directory for CSV export (default: no export)")
	generateCmd.Flags().BoolVar(&genUpload, "upload", true,
		"upload generated tables to the database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if genFundType != "" {
		cfg.Generate.FundType = genFundType
	}
	if len(genReports) > 0 {
		cfg.Generate.Reports = genReports
	}
	if genCount > 0 {
		cfg.Generate.Count = genCount
	}
	if cmd.Flags().Changed("truncate") {
		cfg.Generate.Truncate = genTruncate
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if genOutput != "" {
		cfg.Generate.Output = genOutput
	}
	if cmd.Flags().Changed("upload") {
		cfg.Generate.Upload = genUpload
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	if cfg.Generate.FundType != "" {
		if _, ok := refdata.FundTypeByName(cfg.Generate.FundType); !ok {
			return fmt.Errorf("unknown fund type %q (valid: %s)",
				cfg.Generate.FundType, strings.Join(refdata.FundTypeNames(), ", "))
		}
	}

	kinds, err := resolveKinds(cfg.Generate.Reports)
	if err != nil {
		return err
	}

	logging.Info().
		Str("fund_type", orAll(cfg.Generate.FundType)).
		Int("reports", len(kinds)).
		Int("count", cfg.Generate.Count).
		Uint64("seed", cfg.Generate.Seed).
		Msg("Generating datasets")

	d := dispatch.New(cfg.Generate.Seed, universe.DefaultConfig())
	tables := d.Generate(cfg.Generate.FundType, cfg.Generate.Count, kinds)

	if cfg.Generate.Output != "" {
		for _, kind := range kinds {
			t := tables[kind]
			if t == nil || t.Empty() {
				continue
			}
			if _, err := sink.ExportCSV(cfg.Generate.Output, t); err != nil {
				return fmt.Errorf("failed to export %s: %w", t.Name, err)
			}
		}
	}

	if cfg.Generate.Upload {
		if err := uploadTables(cmd.Context(), kinds, tables); err != nil {
			return err
		}
	}

	logging.Info().Int("reports", len(kinds)).Msg("Generation complete")
	return nil
}

func uploadTables(ctx context.Context, kinds []reports.Kind, tables map[reports.Kind]*reports.Table) error {
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	s := sink.New(pool)

	// Upload what we can; a failure on one table should not discard the rest.
	var failed []string
	for _, kind := range kinds {
		t := tables[kind]
		if t == nil {
			continue
		}
		if err := s.Upload(ctx, t, cfg.Generate.Truncate); err != nil {
			logging.Error().Err(err).Str("table", t.Name).Msg("Upload failed")
			failed = append(failed, t.Name)
		}
	}

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	if err := db.SaveMetadata(ctx, pool, cfg.Generate.FundType, cfg.Generate.Seed, names); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to upload %d of %d tables: %s",
			len(failed), len(kinds), strings.Join(failed, ", "))
	}
	return nil
}

// resolveKinds maps report names to kinds, defaulting to the full catalog.
func resolveKinds(names []string) ([]reports.Kind, error) {
	if len(names) == 0 {
		return reports.AllKinds(), nil
	}
	kinds := make([]reports.Kind, 0, len(names))
	for _, name := range names {
		kind, ok := reports.ParseKind(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown report %q (run 'fundgen reports' for the list)", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
