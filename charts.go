package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pchavezmanzano/bonificacion-ief/plot"
)

const (
	barChartFile  = "grafico_barras.png"
	lineChartFile = "grafico_lineas.png"
)

// MakeCharts writes the two static chart files, overwriting previous runs,
// and returns the paths actually written. A chart whose required columns are
// absent is skipped with a diagnostic, not an error.
func MakeCharts(t Table) []string {
	if t.Empty() {
		fmt.Println("Sin datos para graficar.")
		return nil
	}

	var written []string

	if t.HasColumns("comuna", "monto_m") {
		top := TopComunas(t, 10)
		labels := make([]string, len(top))
		values := make([]float64, len(top))
		for i, g := range top {
			labels[i] = g.Comuna
			values[i] = g.Monto
		}
		png, err := plot.DrawComunaBar(labels, values, "Top 10 comunas por monto total", "Monto total")
		if err != nil {
			log.Printf("Error generando barras: %v", err)
		} else if err := os.WriteFile(barChartFile, png, 0644); err != nil {
			log.Printf("Error guardando %s: %v", barChartFile, err)
		} else {
			fmt.Println("OK: " + barChartFile)
			written = append(written, barChartFile)
		}
	} else {
		fmt.Println("Faltan columnas para barras.")
	}

	if t.HasColumns("comuna", "mtohombre", "mtomujer", "monto_m") {
		comp := TopComunas(t, 20)
		labels := make([]string, len(comp))
		hombres := make([]float64, len(comp))
		mujeres := make([]float64, len(comp))
		for i, g := range comp {
			labels[i] = g.Comuna
			hombres[i] = g.Hombres
			mujeres[i] = g.Mujeres
		}
		png, err := plot.DrawMontoLines(labels, hombres, mujeres, "Comparación montos: Hombres vs Mujeres por comuna")
		if err != nil {
			log.Printf("Error generando líneas: %v", err)
		} else if err := os.WriteFile(lineChartFile, png, 0644); err != nil {
			log.Printf("Error guardando %s: %v", lineChartFile, err)
		} else {
			fmt.Println("OK: " + lineChartFile)
			written = append(written, lineChartFile)
		}
	} else {
		fmt.Println("Faltan columnas para líneas.")
	}

	return written
}
