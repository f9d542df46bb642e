//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sink persists report tables to the analytical database and
// retrieves them back. It depends only on three operations: ensure a table
// exists with a schema inferred from a sample table, insert with an
// optional truncate, and fetch everything back as a flat table.
package sink

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/reports"
)

// insertBatchSize is the number of rows per multi-VALUES insert statement.
const insertBatchSize = 500

// Sink writes report tables to a PostgreSQL-compatible warehouse.
type Sink struct {
	pool *pgxpool.Pool
}

// New creates a sink over an open connection pool.
func New(pool *pgxpool.Pool) *Sink {
	return &Sink{pool: pool}
}

// EnsureTable creates the table if it does not exist, inferring column
// types from the given sample table's rows.
func (s *Sink) EnsureTable(ctx context.Context, t *reports.Table) error {
	sql, err := createTableSQL(t)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to create table %s: %w", t.Name, err)
	}
	logging.Debug().Str("table", t.Name).Msg("Ensured table exists")
	return nil
}

// Insert writes all rows of the table. When truncate is set, existing rows
// are deleted first (DELETE rather than TRUNCATE for compatibility with
// hosted engines that restrict TRUNCATE).
func (s *Sink) Insert(ctx context.Context, t *reports.Table, truncate bool) error {
	if !ValidIdentifier(t.Name) {
		return fmt.Errorf("invalid table name: %s", t.Name)
	}

	if truncate {
		if _, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", t.Name)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", t.Name, err)
		}
		logging.Warn().Str("table", t.Name).Msg("Cleared existing rows before insert")
	}

	columns := "(" + strings.Join(t.Columns, ", ") + ")"
	batch := make([]string, 0, insertBatchSize)
	for _, row := range t.Rows {
		batch = append(batch, renderRow(row))
		if len(batch) >= insertBatchSize {
			if err := s.executeBatchInsert(ctx, t.Name, columns, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := s.executeBatchInsert(ctx, t.Name, columns, batch); err != nil {
			return err
		}
	}

	logging.Info().
		Str("table", t.Name).
		Int("rows", t.RowCount()).
		Msg("Inserted rows")
	return nil
}

func (s *Sink) executeBatchInsert(ctx context.Context, table, columns string, values []string) error {
	sql := fmt.Sprintf("INSERT INTO %s %s VALUES %s", table, columns, strings.Join(values, ", "))
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// Upload ensures the table exists and inserts its rows. Empty tables are
// skipped: there is nothing to infer a schema from.
func (s *Sink) Upload(ctx context.Context, t *reports.Table, truncate bool) error {
	if t.Empty() {
		logging.Warn().Str("table", t.Name).Msg("Skipping upload of empty table")
		return nil
	}
	if err := s.EnsureTable(ctx, t); err != nil {
		return err
	}
	return s.Insert(ctx, t, truncate)
}

// FetchAll reads every row of the named table. orderBy, when non-empty,
// sorts descending by that column (matching the original viewer's
// newest-first ordering).
func (s *Sink) FetchAll(ctx context.Context, name, orderBy string) (*reports.Table, error) {
	if !ValidIdentifier(name) {
		return nil, fmt.Errorf("invalid table name: %s", name)
	}
	sql := fmt.Sprintf("SELECT * FROM %s", name)
	if orderBy != "" {
		if !ValidIdentifier(orderBy) {
			return nil, fmt.Errorf("invalid order column: %s", orderBy)
		}
		sql += fmt.Sprintf(" ORDER BY %s DESC", orderBy)
	}

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}
	t := reports.NewTable(name, columns...)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", name, err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", name, err)
	}

	logging.Info().
		Str("table", name).
		Int("rows", t.RowCount()).
		Msg("Fetched rows")
	return t, nil
}

// normalizeValue converts driver-specific scan types (pgtype numerics and
// friends) into plain displayable values.
func normalizeValue(v any) any {
	if dv, ok := v.(driver.Valuer); ok {
		if out, err := dv.Value(); err == nil {
			return out
		}
	}
	return v
}
