package main

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"
)

const dashboardHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Bonificación Ingreso Ético Familiar · datos.gob.cl</title>
<style>
body { font-family: sans-serif; margin: 24px; color: #222; }
h1 { font-size: 1.4em; }
.caption { color: #666; margin-top: -8px; }
.metrics { display: flex; gap: 32px; margin: 16px 0; }
.metrics div { border: 1px solid #ddd; border-radius: 6px; padding: 12px 20px; }
.metrics span { display: block; font-size: 0.8em; color: #666; }
.metrics strong { font-size: 1.4em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 3px 8px; font-size: 0.85em; }
iframe { border: none; width: 100%; height: 560px; }
.warn { color: #b00; }
</style>
</head>
<body>
<h1>Bonificación Ingreso Ético Familiar · datos.gob.cl</h1>
<p class="caption">Exploración simple · Go + go-chart + go-echarts</p>
{{if .Empty}}
<p class="warn">Sin datos.</p>
{{else}}
{{if .HasRegion}}
<form method="get">
<label for="region">Filtrar por región:</label>
<select id="region" name="region" onchange="this.form.submit()">
<option value="">(todas)</option>
{{range .Options}}<option value="{{.Code}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
</form>
{{else}}
<p>No hay columna de región.</p>
{{end}}
<div class="metrics">
<div><span>Monto hombres</span><strong>{{.Hombres}}</strong></div>
<div><span>Monto mujeres</span><strong>{{.Mujeres}}</strong></div>
<div><span>Monto total</span><strong>{{.Total}}</strong></div>
</div>
<iframe src="{{.ChartSrc}}"></iframe>
<h2>Datos ({{.Rows}} filas)</h2>
{{.TableHTML}}
{{end}}
</body>
</html>
`

type regionOption struct {
	Code     string
	Name     string
	Selected bool
}

type indexData struct {
	Empty     bool
	HasRegion bool
	Options   []regionOption
	Hombres   string
	Mujeres   string
	Total     string
	ChartSrc  string
	Rows      int
	TableHTML template.HTML
}

// dashboard is a read-only projection over one cleaned table. It never
// refetches; each request filters, aggregates and renders from scratch.
type dashboard struct {
	table Table
	tpl   *template.Template
}

func NewDashboard(t Table) *dashboard {
	return &dashboard{
		table: t,
		tpl:   template.Must(template.New("dashboard").Parse(dashboardHTML)),
	}
}

func (d *dashboard) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", d.handleIndex)
	mux.HandleFunc("/chart", d.handleChart)
	return mux
}

func (d *dashboard) Run(addr string) error {
	return http.ListenAndServe(addr, d.routes())
}

// filterByRegion resolves the query value (a code, or a region name typed by
// hand) and returns the matching rows. Empty or "(todas)" passes the table
// through unfiltered.
func (d *dashboard) filterByRegion(pick string) (Table, string) {
	pick = strings.TrimSpace(pick)
	if pick == "" || pick == "(todas)" || !d.table.Has("region") {
		return d.table, ""
	}
	code := pick
	if _, ok := regionesChile[code]; !ok {
		if c, ok := regionCodeByName(pick); ok {
			code = c
		}
	}
	work := d.table.Filter(func(row Row) bool {
		c := row["region"]
		return !c.IsMissing() && strings.TrimSpace(c.String()) == code
	})
	return work, code
}

func (d *dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	pick := r.URL.Query().Get("region")
	work, code := d.filterByRegion(pick)
	th, tm, tg := Totals(work)

	data := indexData{
		Empty:     d.table.Empty(),
		HasRegion: d.table.Has("region"),
		Hombres:   formatMonto(th),
		Mujeres:   formatMonto(tm),
		Total:     formatMonto(tg),
		ChartSrc:  "/chart",
		Rows:      len(work.Rows),
		TableHTML: template.HTML(tableHTML(work)),
	}
	if code != "" {
		data.ChartSrc = "/chart?region=" + code
	}
	for _, c := range RegionCodes(d.table) {
		data.Options = append(data.Options, regionOption{
			Code:     c,
			Name:     regionName(c),
			Selected: c == code,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.tpl.Execute(w, data); err != nil {
		http.Error(w, "Error rendering dashboard", http.StatusInternalServerError)
	}
}

// handleChart serves the top-20 ranking as a go-echarts page, embedded by
// the index via iframe.
func (d *dashboard) handleChart(w http.ResponseWriter, r *http.Request) {
	work, code := d.filterByRegion(r.URL.Query().Get("region"))
	top := TopComunas(work, 20)
	if len(top) == 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintln(w, "Sin datos para graficar.")
		return
	}

	title := "Top 20 comunas por monto total (todas las regiones)"
	if code != "" {
		title = "Top 20 comunas por monto total · " + regionName(code)
	}

	labels := make([]string, len(top))
	values := make([]opts.BarData, len(top))
	for i, g := range top {
		labels[i] = g.Comuna
		values[i] = opts.BarData{Value: g.Monto}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1100px",
			Height: "520px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Show:     opts.Bool(true),
				Rotate:   45,
				Interval: "0",
			},
		}),
	)
	bar.SetXAxis(labels).AddSeries("Monto total", values)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(bar)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}

// tableHTML renders the filtered rows as an HTML table via go-pretty.
func tableHTML(t Table) string {
	w := table.NewWriter()
	header := table.Row{}
	for _, col := range t.Columns {
		header = append(header, col)
	}
	w.AppendHeader(header)
	for _, row := range t.Rows {
		r := table.Row{}
		for _, col := range t.Columns {
			r = append(r, row[col].String())
		}
		w.AppendRow(r)
	}
	return w.RenderHTML()
}
