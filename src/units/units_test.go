package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, float64(Deg(180).Rad()), 1e-12)
	assert.InDelta(t, 90.0, float64(Rad(math.Pi/2).Deg()), 1e-12)
	assert.InDelta(t, 45.0, float64(Deg(45).Rad().Deg()), 1e-12)
}

func TestAliases(t *testing.T) {
	var b Byte = -128
	var f Double = 1.5
	var i Int = math.MaxInt32
	assert.Equal(t, int8(-128), b)
	assert.Equal(t, 1.5, f)
	assert.Equal(t, int32(math.MaxInt32), i)

	var c Char = "é"
	var u URL = "https://processing.org"
	var yes Truthy = true
	var no Falsy = false
	assert.Equal(t, "é", c)
	assert.Equal(t, "https://processing.org", u)
	assert.True(t, yes)
	assert.False(t, no)
}
