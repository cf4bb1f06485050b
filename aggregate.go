package main

import "sort"

// ComunaMonto is one grouped ranking entry: the comuna and its summed montos.
type ComunaMonto struct {
	Comuna  string
	Monto   float64
	Hombres float64
	Mujeres float64
}

// Totals returns the three scalar metrics. The grand total falls back to
// hombres+mujeres when the dataset carries no monto_m column.
func Totals(t Table) (hombres, mujeres, total float64) {
	if t.Has("mtohombre") {
		hombres = t.SumColumn("mtohombre")
	}
	if t.Has("mtomujer") {
		mujeres = t.SumColumn("mtomujer")
	}
	if t.Has("monto_m") {
		total = t.SumColumn("monto_m")
	} else {
		total = hombres + mujeres
	}
	return hombres, mujeres, total
}

// TopComunas groups rows by comuna, sums the monto columns and returns the
// top n groups by total amount, descending. Rows with a missing comuna are
// excluded. The sort is stable so ties keep first-appearance order.
func TopComunas(t Table, n int) []ComunaMonto {
	sums := map[string]*ComunaMonto{}
	var order []string
	for _, row := range t.Rows {
		key := row["comuna"]
		if key.IsMissing() {
			continue
		}
		name := key.String()
		g, ok := sums[name]
		if !ok {
			g = &ComunaMonto{Comuna: name}
			sums[name] = g
			order = append(order, name)
		}
		if v, ok := row["monto_m"].Float(); ok {
			g.Monto += v
		}
		if v, ok := row["mtohombre"].Float(); ok {
			g.Hombres += v
		}
		if v, ok := row["mtomujer"].Float(); ok {
			g.Mujeres += v
		}
	}

	ranked := make([]ComunaMonto, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *sums[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Monto > ranked[j].Monto
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// RegionCodes returns the distinct, sorted, non-missing region codes present
// in the table.
func RegionCodes(t Table) []string {
	if !t.Has("region") {
		return nil
	}
	seen := map[string]bool{}
	var codes []string
	for _, row := range t.Rows {
		c := row["region"]
		if c.IsMissing() {
			continue
		}
		code := c.String()
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
