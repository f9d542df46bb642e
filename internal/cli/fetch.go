package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundgen/internal/db"
	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/sink"
)

var (
	fetchTable   string
	fetchOrderBy string
	fetchOutput  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a generated table back as CSV",
	Long: `Fetch all rows of a previously uploaded table from the analytical
database and write them as CSV to a file or to stdout.

Example:
  fundgen fetch --table daily_nav --output ./exports --connection "postgres://..."`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchTable, "table", "",
		"table to fetch (required)")
	fetchCmd.Flags().StringVar(&fetchOrderBy, "order-by", "",
		"column to sort by, descending (default: unordered)")
	fetchCmd.Flags().StringVar(&fetchOutput, "output", "",
		"directory for the CSV file (default: write to stdout)")
	_ = fetchCmd.MarkFlagRequired("table")
}

// checkFetchIdentifiers validates the table name and, when set, the sort
// column. An empty order-by means an unordered fetch.
func checkFetchIdentifiers(table, orderBy string) error {
	if !sink.ValidIdentifier(table) {
		return fmt.Errorf("invalid table name: %s", table)
	}
	if orderBy != "" && !sink.ValidIdentifier(orderBy) {
		return fmt.Errorf("invalid order-by column: %s", orderBy)
	}
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateFetch(); err != nil {
		return err
	}
	if err := checkFetchIdentifiers(fetchTable, fetchOrderBy); err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	t, err := sink.New(pool).FetchAll(ctx, fetchTable, fetchOrderBy)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", fetchTable, err)
	}

	if fetchOutput == "" {
		return sink.WriteCSV(os.Stdout, t)
	}

	path, err := sink.ExportCSV(fetchOutput, t)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", fetchTable, err)
	}
	logging.Info().
		Str("table", t.Name).
		Int("rows", t.RowCount()).
		Str("path", path).
		Msg("Fetched table")
	return nil
}
