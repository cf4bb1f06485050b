package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMonto(t *testing.T) {
	assert.Equal(t, "1.234.567", formatMonto(1234567))
	assert.Equal(t, "0", formatMonto(0))
	assert.Equal(t, "10.000", formatMonto(10000.4))
}

func TestConsoleReportEmpty(t *testing.T) {
	buf := &strings.Builder{}
	ConsoleReport(buf, Table{})
	assert.Equal(t, "Sin datos.\n", buf.String())
}

func TestConsoleReport(t *testing.T) {
	tab := Table{
		Columns: []string{"comuna", "monto_m"},
		Rows: []Row{
			{"comuna": Text("Arica"), "monto_m": Number(1500000)},
			{"comuna": Text("Iquique"), "monto_m": Number(500)},
		},
	}
	buf := &strings.Builder{}
	ConsoleReport(buf, tab)
	out := buf.String()

	assert.Contains(t, out, "Forma: 2 filas x 2 columnas")
	assert.Contains(t, out, "Columnas: comuna, monto_m")
	assert.Contains(t, out, "Tot General: 1.500.500")
	assert.Contains(t, out, "Top 10 comunas por monto total:")
	assert.Contains(t, out, "Arica")
}

func TestConsoleReportSkipsRankingWithoutComuna(t *testing.T) {
	tab := Table{
		Columns: []string{"mtohombre"},
		Rows:    []Row{{"mtohombre": Number(10)}},
	}
	buf := &strings.Builder{}
	ConsoleReport(buf, tab)

	assert.Contains(t, buf.String(), "Tot Hombres: 10")
	assert.NotContains(t, buf.String(), "Top 10")
}

func TestGenerateTopTable(t *testing.T) {
	out := GenerateTopTable([]ComunaMonto{
		{Comuna: "Arica", Monto: 10000},
		{Comuna: "Iquique", Monto: 500},
	})
	assert.Contains(t, out, "COMUNA")
	assert.Contains(t, out, "Arica")
	assert.Contains(t, out, "10.000")

	// descending order preserved in output
	assert.Less(t, strings.Index(out, "Arica"), strings.Index(out, "Iquique"))
}
