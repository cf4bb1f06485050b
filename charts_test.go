package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeChartsEmptyTable(t *testing.T) {
	assert.Nil(t, MakeCharts(Table{}))
}

func TestMakeChartsMissingColumns(t *testing.T) {
	tab := Table{
		Columns: []string{"comuna"},
		Rows:    []Row{{"comuna": Text("Arica")}},
	}
	assert.Nil(t, MakeCharts(tab))
}

func TestMakeChartsWritesFiles(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	tab := Table{
		Columns: []string{"comuna", "mtohombre", "mtomujer", "monto_m"},
		Rows: []Row{
			{"comuna": Text("Quilpué"), "mtohombre": Number(100), "mtomujer": Number(50), "monto_m": Number(150)},
			{"comuna": Text("Santiago"), "mtohombre": Number(200), "mtomujer": Number(300), "monto_m": Number(500)},
			{"comuna": Text("Ñuñoa"), "mtohombre": Number(70), "mtomujer": Number(90), "monto_m": Number(160)},
		},
	}
	written := MakeCharts(tab)
	assert.Equal(t, []string{barChartFile, lineChartFile}, written)

	for _, f := range written {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
