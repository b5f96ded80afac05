package sheet_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dradle/my-bike-rent/internal/model"
	"github.com/dradle/my-bike-rent/internal/sheet"
	"github.com/dradle/my-bike-rent/internal/sheet/sheettest"
)

func TestTableCell_OutOfRangeIsAbsent(t *testing.T) {
	tbl := sheettest.Table(t,
		[]any{"TrekBike", 150, -20},
		[]any{},
		[]any{"01.01.2026", nil, 50},
	)
	tbl.Rows = append(tbl.Rows, sheet.Row{C: nil})

	coords := [][2]int{
		{-1, 0}, {0, -1}, {0, 3}, {0, 100},
		{1, 0}, {2, 1}, {3, 0}, {4, 0}, {1000, 1000},
	}
	for _, c := range coords {
		assert.True(t, tbl.Cell(c[0], c[1]).IsAbsent(), "cell %v", c)
	}

	var nilTable *sheet.Table
	assert.True(t, nilTable.Cell(0, 0).IsAbsent())
	assert.Equal(t, 0, nilTable.Len())
}

func TestTableCell_Values(t *testing.T) {
	tbl := sheettest.Table(t, []any{"TrekBike", 150, nil, model.Text("")})

	assert.Equal(t, model.CellText, tbl.Cell(0, 0).Kind())
	assert.Equal(t, "TrekBike", tbl.Cell(0, 0).Text())

	n, ok := tbl.Cell(0, 1).Number()
	require.True(t, ok)
	assert.Equal(t, 150.0, n)

	assert.True(t, tbl.Cell(0, 2).IsAbsent())
	assert.True(t, tbl.Cell(0, 3).IsEmpty())
	assert.False(t, tbl.Cell(0, 3).IsAbsent())
}

func TestTableJSON_NullAndMissingValues(t *testing.T) {
	raw := `{"rows":[{"c":[{"v":"a"},null,{"v":null},{"f":"x"},{"v":12.5},{"v":true}]},{"c":[]}]}`

	var tbl sheet.Table
	require.NoError(t, json.Unmarshal([]byte(raw), &tbl))
	require.Equal(t, 2, tbl.Len())

	assert.Equal(t, "a", tbl.Cell(0, 0).Text())
	assert.True(t, tbl.Cell(0, 1).IsAbsent())
	assert.True(t, tbl.Cell(0, 2).IsAbsent())
	assert.True(t, tbl.Cell(0, 3).IsAbsent())
	assert.Equal(t, "12.5", tbl.Cell(0, 4).Text())
	assert.Equal(t, "true", tbl.Cell(0, 5).Text())
	assert.True(t, tbl.Cell(1, 0).IsAbsent())
}
