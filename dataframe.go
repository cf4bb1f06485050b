package main

import "strconv"

type cellKind int

const (
	cellMissing cellKind = iota
	cellText
	cellNumber
)

// Cell is one table value: trimmed text, a float, or the missing marker.
// The zero value is missing, so lookups of absent columns behave correctly.
type Cell struct {
	kind cellKind
	text string
	num  float64
}

var Missing = Cell{}

func Text(s string) Cell    { return Cell{kind: cellText, text: s} }
func Number(f float64) Cell { return Cell{kind: cellNumber, num: f} }

func (c Cell) IsMissing() bool { return c.kind == cellMissing }

// Float returns the numeric value; missing and text cells report false.
func (c Cell) Float() (float64, bool) {
	if c.kind == cellNumber {
		return c.num, true
	}
	return 0, false
}

func (c Cell) String() string {
	switch c.kind {
	case cellText:
		return c.text
	case cellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	}
	return ""
}

type Row map[string]Cell

// Table is a rectangular view over the cleaned records: a fixed ordered set
// of normalized column names and one Row per source record, in source order.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t Table) Empty() bool { return len(t.Rows) == 0 }

func (t Table) Has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

func (t Table) HasColumns(cols ...string) bool {
	for _, c := range cols {
		if !t.Has(c) {
			return false
		}
	}
	return true
}

// SumColumn adds every numeric cell of the column, skipping missing values.
func (t Table) SumColumn(col string) float64 {
	sum := 0.0
	for _, row := range t.Rows {
		if v, ok := row[col].Float(); ok {
			sum += v
		}
	}
	return sum
}

// Filter returns a table with the same columns and only the rows keep accepts.
// Rows are shared, not copied; the table is read-only after cleaning.
func (t Table) Filter(keep func(Row) bool) Table {
	out := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
