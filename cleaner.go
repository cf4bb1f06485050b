package main

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pivolan/go_utils"
)

// Column-name substrings that mark a column as numeric in the source dataset
// (montos, head counts, quantities). Matched against normalized names.
var numericTokens = []string{"mto", "monto", "hombre", "mujer", "no", "cantidad"}

// Group/join key columns that get the extra NBSP cleanup.
var keyColumns = []string{"comuna", "region"}

var colNameRe = regexp.MustCompile(`[^a-z0-9_]+`)

// normalizeColumn lowercases, turns spaces into underscores and drops
// everything outside [a-z0-9_]. Idempotent.
func normalizeColumn(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	return colNameRe.ReplaceAllString(s, "")
}

// dedupColumns suffixes repeated names with a counter so column names stay
// unique after normalization.
func dedupColumns(cols []string) []string {
	seen := map[string]bool{}
	result := make([]string, len(cols))
	for i, col := range cols {
		name := col
		for counter := 1; seen[name]; counter++ {
			name = fmt.Sprintf("%s_%d", col, counter)
		}
		seen[name] = true
		result[i] = name
	}
	return result
}

// cleanText trims the value and maps blank-like text (empty, none, null, nan
// in any casing) to the missing marker.
func cleanText(s string) Cell {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "null", "nan":
		return Missing
	}
	return Text(s)
}

// toFloatCL parses Chilean-formatted numeric text ("." thousands separator,
// "," decimal separator). Unparseable cells degrade to missing, numbers pass
// through untouched.
func toFloatCL(c Cell) Cell {
	if _, ok := c.Float(); ok {
		return c
	}
	if c.IsMissing() {
		return Missing
	}
	s := strings.TrimSpace(c.String())
	switch strings.ToLower(s) {
	case "", "-", "nan", "none", "null":
		return Missing
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing
	}
	return Number(f)
}

func isNumericCandidate(col string) bool {
	for _, token := range numericTokens {
		if strings.Contains(col, token) {
			return true
		}
	}
	return false
}

func toCell(col string, v any) Cell {
	switch x := v.(type) {
	case nil:
		return Missing
	case float64:
		return Number(x)
	case string:
		if go_utils.InArray(col, keyColumns) {
			x = strings.ReplaceAll(x, " ", "")
		}
		return cleanText(x)
	default:
		return cleanText(fmt.Sprint(x))
	}
}

// RecordsToTable reshapes the raw API response into a cleaned Table. Any
// unexpected shape or an empty record list yields an empty Table, which every
// downstream stage treats as a no-op.
func RecordsToTable(data map[string]any) Table {
	result, ok := data["result"].(map[string]any)
	if !ok {
		return Table{}
	}
	records, _ := result["records"].([]any)
	recs := make([]map[string]any, 0, len(records))
	for _, r := range records {
		if m, ok := r.(map[string]any); ok {
			recs = append(recs, m)
		}
	}
	if len(recs) == 0 {
		return Table{}
	}

	// JSON objects arrive as unordered maps, so column order is fixed by
	// sorting the raw names before normalization.
	seen := map[string]bool{}
	var rawCols []string
	for _, rec := range recs {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				rawCols = append(rawCols, k)
			}
		}
	}
	sort.Strings(rawCols)

	normCols := make([]string, len(rawCols))
	for i, c := range rawCols {
		normCols[i] = normalizeColumn(c)
	}
	normCols = dedupColumns(normCols)
	colFor := map[string]string{}
	for i, c := range rawCols {
		colFor[c] = normCols[i]
	}

	t := Table{Columns: normCols}
	for _, rec := range recs {
		row := Row{}
		for raw, v := range rec {
			col := colFor[raw]
			row[col] = toCell(col, v)
		}
		t.Rows = append(t.Rows, row)
	}

	for _, col := range t.Columns {
		if !isNumericCandidate(col) {
			continue
		}
		for _, row := range t.Rows {
			if c, ok := row[col]; ok {
				row[col] = toFloatCL(c)
			}
		}
	}

	// Derived total: only when absent and both components exist. Never
	// recomputed or overwritten afterwards.
	if !t.Has("monto_m") && t.HasColumns("mtohombre", "mtomujer") {
		for _, row := range t.Rows {
			h, _ := row["mtohombre"].Float()
			m, _ := row["mtomujer"].Float()
			row["monto_m"] = Number(h + m)
		}
		t.Columns = append(t.Columns, "monto_m")
	}

	return t
}
