package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pchavezmanzano/bonificacion-ief/config"
)

var rootCmd = &cobra.Command{
	Use:   "bonificacion-ief",
	Short: "Explorador de la Bonificación Ingreso Ético Familiar (datos.gob.cl)",
	Long: `Descarga el dataset de la Bonificación Ingreso Ético Familiar desde la API
de datos.gob.cl, limpia y normaliza los registros, imprime un resumen por
consola y genera dos gráficos PNG. Con el subcomando "serve" levanta un
dashboard web de solo lectura sobre los mismos datos.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBatch()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sirve el dashboard interactivo",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runBatch() {
	cfg := config.GetConfig()

	fmt.Println("Descargando datos...")
	data := FetchData(cfg)
	if len(data) > 0 {
		printFragment(data)
	}

	t := RecordsToTable(data)
	ConsoleReport(os.Stdout, t)
	files := MakeCharts(t)
	NotifyCharts(cfg, files)

	fmt.Println("\nPara UI: bonificacion-ief serve")
}

func runServe() {
	cfg := config.GetConfig()

	fmt.Println("Descargando datos...")
	t := RecordsToTable(FetchData(cfg))

	d := NewDashboard(t)
	fmt.Println("listen on: http://localhost" + cfg.ListenAddr)
	if err := d.Run(cfg.ListenAddr); err != nil {
		log.Println("Error starting server:", err)
	}
}

// printFragment shows the first kilobyte of the pretty-printed response, a
// quick sanity check of what the API returned.
func printFragment(data map[string]any) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return
	}
	if len(b) > 1000 {
		b = b[:1000]
	}
	fmt.Printf("Fragmento JSON:\n%s\n\n", b)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
	}
}
