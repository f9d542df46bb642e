//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package main is the entry point for fundgen.
package main

import (
	"fmt"
	"os"

	"github.com/quantrail/fundgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
