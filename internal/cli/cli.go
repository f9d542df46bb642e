//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for fundgen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundgen/internal/config"
	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/refdata"
	"github.com/quantrail/fundgen/internal/reports"
	"github.com/quantrail/fundgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "fundgen",
		Short: "Synthetic fund-management data generator",
		Long: `fundgen generates realistic synthetic datasets for fund-management
back, middle and front office operations: transfer agency transactions,
portfolio holdings, trade orders and executions, NAV and price series,
trial balances and more.

Generated tables can be uploaded to a PostgreSQL-compatible analytical
database, exported as CSV files, or both. Generation is deterministic
when a seed is supplied, so datasets can be reproduced exactly.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./fundgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(fundTypesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List available report kinds",
	Long: `List all report kinds fundgen can generate, with the table name
each one writes to and how its row count scales relative to --count.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available reports:")
		cmd.Println()
		for _, def := range reports.Catalog() {
			scale := fmt.Sprintf("%.1fx-%.1fx of count", def.MinFactor, def.MaxFactor)
			if def.Snapshot {
				scale = "snapshot (natural size)"
			}
			cmd.Printf("  %-25s %s\n", def.Name, def.Description)
			cmd.Printf("  %-25s rows: %s\n", "", scale)
		}
		cmd.Println()
		cmd.Println("Use 'fundgen generate --reports <name>,<name>' to pick a subset.")
	},
}

var fundTypesCmd = &cobra.Command{
	Use:   "fundtypes",
	Short: "List available fund types",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available fund types:")
		cmd.Println()
		for _, name := range refdata.FundTypeNames() {
			ft, _ := refdata.FundTypeByName(name)
			cmd.Printf("  %-20s code %-6s expense %.2f%%  daily vol %.2f%%\n",
				ft.Name, ft.Code, ft.ExpenseRatio*100, ft.DailyVolatility*100)
		}
		cmd.Println()
		cmd.Println("Use 'fundgen generate --fund-type <name>' to restrict generation.")
	},
}
