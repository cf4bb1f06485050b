package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellZeroValueIsMissing(t *testing.T) {
	var c Cell
	assert.True(t, c.IsMissing())

	// absent column lookups therefore behave as missing
	row := Row{}
	assert.True(t, row["monto_m"].IsMissing())
	_, ok := row["monto_m"].Float()
	assert.False(t, ok)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "hola", Text("hola").String())
	assert.Equal(t, "1234.5", Number(1234.5).String())
	assert.Equal(t, "", Missing.String())
}

func TestSumColumnSkipsMissing(t *testing.T) {
	tab := Table{
		Columns: []string{"monto_m"},
		Rows: []Row{
			{"monto_m": Number(10)},
			{"monto_m": Missing},
			{"monto_m": Text("no numerico")},
			{"monto_m": Number(5)},
		},
	}
	assert.Equal(t, 15.0, tab.SumColumn("monto_m"))
}

func TestFilterKeepsColumns(t *testing.T) {
	tab := Table{
		Columns: []string{"comuna", "region"},
		Rows: []Row{
			{"comuna": Text("Quilpué"), "region": Text("5")},
			{"comuna": Text("Santiago"), "region": Text("13")},
		},
	}
	out := tab.Filter(func(r Row) bool { return r["region"].String() == "5" })
	assert.Equal(t, tab.Columns, out.Columns)
	assert.Len(t, out.Rows, 1)
	assert.Equal(t, Text("Quilpué"), out.Rows[0]["comuna"])

	none := tab.Filter(func(r Row) bool { return false })
	assert.True(t, none.Empty())
}
