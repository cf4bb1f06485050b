package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var montoPrinter = message.NewPrinter(language.Spanish)

// formatMonto renders an amount with the Chilean "." thousands separator and
// no decimals.
func formatMonto(v float64) string {
	return montoPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// GenerateHeadTable renders the first n rows as an ASCII table.
func GenerateHeadTable(t Table, n int) string {
	w := table.NewWriter()
	header := table.Row{}
	for _, col := range t.Columns {
		header = append(header, col)
	}
	w.AppendHeader(header)

	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	for _, row := range t.Rows[:n] {
		r := table.Row{}
		for _, col := range t.Columns {
			r = append(r, row[col].String())
		}
		w.AppendRow(r)
	}
	w.SetStyle(table.StyleDefault)
	return w.Render()
}

func GenerateTotalsLine(t Table) string {
	th, tm, tg := Totals(t)
	return fmt.Sprintf("Tot Hombres: %s | Tot Mujeres: %s | Tot General: %s",
		formatMonto(th), formatMonto(tm), formatMonto(tg))
}

// GenerateTopTable renders a grouped ranking as an ASCII table.
func GenerateTopTable(top []ComunaMonto) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Comuna", "Monto total"})
	for _, g := range top {
		w.AppendRow(table.Row{g.Comuna, formatMonto(g.Monto)})
	}
	w.SetStyle(table.StyleDefault)
	return w.Render()
}

// ConsoleReport writes the fixed report sequence. An empty table
// short-circuits to a single "no data" line.
func ConsoleReport(w io.Writer, t Table) {
	if t.Empty() {
		fmt.Fprintln(w, "Sin datos.")
		return
	}

	fmt.Fprintf(w, "Head:\n%s\n\n", GenerateHeadTable(t, 5))
	fmt.Fprintf(w, "Forma: %d filas x %d columnas\n\n", len(t.Rows), len(t.Columns))
	fmt.Fprintf(w, "Columnas: %s\n\n", strings.Join(t.Columns, ", "))
	fmt.Fprintln(w, GenerateTotalsLine(t))
	fmt.Fprintln(w)

	if t.HasColumns("comuna", "monto_m") {
		fmt.Fprintf(w, "Top 10 comunas por monto total:\n%s\n\n", GenerateTopTable(TopComunas(t, 10)))
	}
}
