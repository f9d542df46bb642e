//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantrail/fundgen/internal/reports"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidIdentifier reports whether name is safe to interpolate as a SQL
// identifier. Table and column names come from the closed report catalog,
// but fetch targets and order-by columns are user input.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// createTableSQL builds a CREATE TABLE IF NOT EXISTS statement with column
// types inferred from the table's rows (the "schema from a sample table"
// contract). The table must have at least one row.
func createTableSQL(t *reports.Table) (string, error) {
	if t.Empty() {
		return "", fmt.Errorf("cannot infer schema for %s: table has no rows", t.Name)
	}
	if !ValidIdentifier(t.Name) {
		return "", fmt.Errorf("invalid table name: %s", t.Name)
	}

	cols := make([]string, 0, len(t.Columns))
	for i, name := range t.Columns {
		if !ValidIdentifier(name) {
			return "", fmt.Errorf("invalid column name: %s", name)
		}
		cols = append(cols, fmt.Sprintf("%s %s", name, columnType(t, i)))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		t.Name, strings.Join(cols, ", ")), nil
}

// columnType infers the SQL type of one column from the first non-nil value
// found in it. All-nil columns degrade to TEXT.
func columnType(t *reports.Table, col int) string {
	for _, row := range t.Rows {
		switch v := row[col].(type) {
		case nil:
			continue
		case string:
			return "TEXT"
		case int, int64:
			return "BIGINT"
		case float64:
			return "DOUBLE PRECISION"
		case bool:
			return "BOOLEAN"
		case decimal.Decimal:
			return "NUMERIC(24,8)"
		case time.Time:
			if dateOnly(v) {
				return "DATE"
			}
			return "TIMESTAMP"
		default:
			return "TEXT"
		}
	}
	return "TEXT"
}

// dateOnly reports whether the timestamp has no clock component.
func dateOnly(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// renderValue renders one cell as a SQL literal for the batched
// multi-VALUES inserts.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case decimal.Decimal:
		return val.String()
	case time.Time:
		if dateOnly(val) {
			return "'" + val.Format("2006-01-02") + "'"
		}
		return "'" + val.Format("2006-01-02 15:04:05") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(val), "'", "''") + "'"
	}
}

// renderRow renders one row as a parenthesized VALUES tuple.
func renderRow(row []any) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = renderValue(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
