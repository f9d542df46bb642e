package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundgen/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the last generation run recorded in the database",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateFetch(); err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	exists, err := db.MetadataExists(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to check metadata: %w", err)
	}
	if !exists {
		cmd.Println("No generation run recorded (run 'fundgen generate' first).")
		return nil
	}

	metadata, err := db.GetAllMetadata(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}

	if ft, ok := metadata["fund_type"]; ok && ft == "" {
		metadata["fund_type"] = "all"
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmd.Println("Last generation run:")
	for _, k := range keys {
		cmd.Printf("  %-12s %s\n", k, metadata[k])
	}
	return nil
}
