package plot

import (
	"bytes"
	"fmt"

	"github.com/mozillazg/go-unidecode"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// asciiLabel transliterates accented comuna names so the chart font renders
// every label.
func asciiLabel(s string) string {
	return unidecode.Unidecode(s)
}

func findMaxValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

// bottomPadding reserves room under the X axis for the rotated labels.
func bottomPadding(labels []string) int {
	count := 0
	for _, l := range labels {
		if len(l) > count {
			count = len(l)
		}
	}
	return count * 8
}

// DrawComunaBar renders a bar chart of one value per comuna as PNG bytes.
func DrawComunaBar(labels []string, values []float64, title, nameY string) ([]byte, error) {
	if len(labels) == 0 || len(labels) != len(values) {
		return nil, fmt.Errorf("invalid bar data: %d labels, %d values", len(labels), len(values))
	}

	var bars []chart.Value
	for i := range labels {
		bars = append(bars, chart.Value{
			Value: values[i],
			Label: asciiLabel(labels[i]),
			Style: chart.Style{
				FillColor: drawing.ColorPurple.WithAlpha(100),
			},
		})
	}

	max := findMaxValue(values)
	if max <= 0 {
		max = 1
	}
	paddingX := bottomPadding(labels)

	bar := chart.BarChart{}
	bar.Title = title
	bar.Background = chart.Style{
		FillColor:   drawing.ColorWhite,
		StrokeColor: chart.ColorBlack,
		Padding: chart.Box{
			Bottom: paddingX,
			Top:    50,
		},
	}
	bar.Height = 768 + paddingX
	bar.Width = 90*len(bars) + 250
	bar.BarWidth = 60
	bar.Bars = bars
	bar.YAxis = chart.YAxis{
		Name: nameY,
		Range: &chart.ContinuousRange{
			Min: 0.0,
			Max: max,
		},
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.ColorBlack,
			FontSize:    14,
		},
		GridMajorStyle: chart.Style{
			StrokeColor:     chart.ColorBlack,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
	bar.XAxis = chart.Style{
		StrokeWidth:         2,
		StrokeColor:         chart.ColorBlack,
		TextRotationDegrees: 88,
		FontSize:            14,
	}

	buffer := bytes.NewBuffer([]byte{})
	err := bar.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// DrawMontoLines renders the hombres vs mujeres comparison as a two-series
// line chart with one tick per comuna.
func DrawMontoLines(labels []string, hombres, mujeres []float64, title string) ([]byte, error) {
	if len(labels) < 2 {
		return nil, fmt.Errorf("need at least 2 comunas for a line chart, got %d", len(labels))
	}
	if len(hombres) != len(labels) || len(mujeres) != len(labels) {
		return nil, fmt.Errorf("series length mismatch: %d labels, %d hombres, %d mujeres",
			len(labels), len(hombres), len(mujeres))
	}

	xValues := make([]float64, len(labels))
	ticks := make([]chart.Tick, len(labels))
	for i, l := range labels {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: asciiLabel(l)}
	}

	graph := chart.Chart{
		Title: title,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: bottomPadding(labels),
			},
		},
		Width:  1600,
		Height: 700,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{
				TextRotationDegrees: 45,
				FontSize:            11,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(len(labels) - 1),
			},
		},
		YAxis: chart.YAxis{
			Name: "Monto",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Hombres",
				XValues: xValues,
				YValues: hombres,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    drawing.ColorBlue,
				},
			},
			chart.ContinuousSeries{
				Name:    "Mujeres",
				XValues: xValues,
				YValues: mujeres,
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    drawing.ColorRed,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}
