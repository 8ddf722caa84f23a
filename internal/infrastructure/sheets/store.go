// Package sheets holds the spreadsheet-like row stores the repositories
// persist to.
//
// A sheet is a named tab with a header row followed by data rows. Every
// store addresses data rows by their 0-based position below the header, so a
// caller locates a row by scanning Rows and then writes by position. Nothing
// locks the tab between the scan and the write: a concurrent insert or delete
// by another client can shift positions in between.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var ErrRowOutOfRange = errors.New("row index out of range")

// Store is the row-level port every backend implements.
type Store interface {
	// EnsureSheet creates the tab with its header row when missing.
	EnsureSheet(ctx context.Context, sheet string, header []string) error
	// Rows returns the data rows (header excluded). Trailing empty cells may be
	// missing from a row.
	Rows(ctx context.Context, sheet string) ([][]string, error)
	Append(ctx context.Context, sheet string, row []string) error
	Update(ctx context.Context, sheet string, index int, row []string) error
	Delete(ctx context.Context, sheet string, index int) error
}

// cellString renders a loosely typed cell value the way the mappers expect.
func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, c := range row {
		cells[i] = c
	}
	return cells
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// columnName returns the A1 column letters for a 1-based column number.
func columnName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}
