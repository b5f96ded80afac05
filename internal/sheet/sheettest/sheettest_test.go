package sheettest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dradle/my-bike-rent/internal/model"
)

type fatalRecorder struct {
	testing.TB
	failed bool
	msg    string
}

func (f *fatalRecorder) Helper() {}

func (f *fatalRecorder) Fatalf(format string, args ...any) {
	f.failed = true
	f.msg = format
}

func TestTable(t *testing.T) {
	tbl := Table(t, []any{"TrekBike", 150, 2.5, nil, model.Text("")})

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "TrekBike", tbl.Cell(0, 0).Text())
	n, ok := tbl.Cell(0, 1).Number()
	require.True(t, ok)
	assert.Equal(t, 150.0, n)
	assert.Equal(t, "2.5", tbl.Cell(0, 2).Text())
	assert.True(t, tbl.Cell(0, 3).IsAbsent())
	assert.True(t, tbl.Cell(0, 4).IsEmpty())
}

func TestTable_UnsupportedValueFailsTest(t *testing.T) {
	rec := &fatalRecorder{TB: t}
	Table(rec, []any{"ok", struct{}{}})

	assert.True(t, rec.failed)
	assert.Contains(t, rec.msg, "unsupported value")
}
