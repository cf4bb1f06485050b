package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionName(t *testing.T) {
	assert.Equal(t, "Valparaíso", regionName("5"))
	assert.Equal(t, "Metropolitana de Santiago", regionName("13"))
	assert.Equal(t, "Región 99", regionName("99"))
}

func TestRegionCodeByName(t *testing.T) {
	code, ok := regionCodeByName("Valparaíso")
	assert.True(t, ok)
	assert.Equal(t, "5", code)

	// accent-insensitive fallback
	code, ok = regionCodeByName("valparaiso")
	assert.True(t, ok)
	assert.Equal(t, "5", code)

	code, ok = regionCodeByName("nuble")
	assert.True(t, ok)
	assert.Equal(t, "16", code)

	_, ok = regionCodeByName("Atlantis")
	assert.False(t, ok)
}
