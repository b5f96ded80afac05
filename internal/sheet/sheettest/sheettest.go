// Package sheettest builds sheet tables from plain Go values for tests.
package sheettest

import (
	"testing"

	"github.com/dradle/my-bike-rent/internal/model"
	"github.com/dradle/my-bike-rent/internal/sheet"
)

// Table converts rows of nil, string, int, float64 or model.Cell values into
// a decoded table. Any other value fails the test.
func Table(tb testing.TB, rows ...[]any) *sheet.Table {
	tb.Helper()
	t := &sheet.Table{Rows: make([]sheet.Row, 0, len(rows))}
	for ri, r := range rows {
		row := sheet.Row{C: make([]*sheet.RawCell, len(r))}
		for ci, v := range r {
			switch x := v.(type) {
			case nil:
			case model.Cell:
				row.C[ci] = &sheet.RawCell{V: x}
			case string:
				row.C[ci] = &sheet.RawCell{V: model.Text(x)}
			case float64:
				row.C[ci] = &sheet.RawCell{V: model.Number(x)}
			case int:
				row.C[ci] = &sheet.RawCell{V: model.Number(float64(x))}
			default:
				tb.Fatalf("sheettest: row %d col %d: unsupported value %T", ri, ci, v)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
