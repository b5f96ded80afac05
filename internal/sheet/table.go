package sheet

import "github.com/dradle/my-bike-rent/internal/model"

// RawCell is one gviz cell object. The formatted "f" value is ignored.
type RawCell struct {
	V model.Cell `json:"v"`
}

// Row holds cells in column order. Nil entries are empty cells.
type Row struct {
	C []*RawCell `json:"c"`
}

// Table is the decoded grid. Rows may be of different lengths.
type Table struct {
	Rows []Row `json:"rows"`
}

// Cell returns the value at (row, col). Out-of-range coordinates, short rows
// and null cells all come back as an absent cell.
func (t *Table) Cell(row, col int) model.Cell {
	if t == nil || row < 0 || row >= len(t.Rows) || col < 0 {
		return model.Absent()
	}
	cells := t.Rows[row].C
	if col >= len(cells) || cells[col] == nil {
		return model.Absent()
	}
	return cells[col].V
}

// Len is the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
