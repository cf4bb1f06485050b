package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawComunaBar(t *testing.T) {
	labels := []string{"Quilpué", "Villa Alemana", "Ñuñoa", "Valparaíso"}
	values := []float64{1500000, 900000, 450000, 120000}

	b, err := DrawComunaBar(labels, values, "Top comunas", "Monto total")
	assert.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestDrawComunaBarInvalidInput(t *testing.T) {
	_, err := DrawComunaBar(nil, nil, "t", "y")
	assert.Error(t, err)

	_, err = DrawComunaBar([]string{"a", "b"}, []float64{1}, "t", "y")
	assert.Error(t, err)
}

func TestDrawMontoLines(t *testing.T) {
	labels := []string{"Quilpué", "Villa Alemana", "Ñuñoa"}
	hombres := []float64{100, 200, 300}
	mujeres := []float64{150, 180, 250}

	b, err := DrawMontoLines(labels, hombres, mujeres, "Hombres vs Mujeres")
	assert.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestDrawMontoLinesTooFewPoints(t *testing.T) {
	_, err := DrawMontoLines([]string{"solo una"}, []float64{1}, []float64{2}, "t")
	assert.Error(t, err)
}

func TestAsciiLabel(t *testing.T) {
	assert.Equal(t, "Nunoa", asciiLabel("Ñuñoa"))
	assert.Equal(t, "Valparaiso", asciiLabel("Valparaíso"))
}
