package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xernobyl/pvector/src/sketch"
	"github.com/xernobyl/pvector/src/vec"
)

func TestSampleUnitVectors(t *testing.T) {
	sk := sketch.New(sketch.WithSeed(99))

	circle := Sample(sk, 500, 2)
	res := Measure(circle)
	assert.Equal(t, 500, res.Count)
	assert.InDelta(t, 1.0, res.MeanMag, 1e-12)
	assert.Less(t, res.MaxDeviation, 1e-9)
	for _, v := range circle {
		assert.Equal(t, 0.0, v.Z)
	}

	sphere := Sample(sk, 5000, 3)
	res = Measure(sphere)
	assert.Less(t, res.MaxDeviation, 1e-9)
	// uniform on the sphere, so the mean sits near the origin
	assert.Less(t, res.Centroid.Mag(), 0.1)
}

func TestMeasureEmpty(t *testing.T) {
	res := Measure(nil)
	assert.Equal(t, SampleResult{}, res)

	res = Measure([]vec.PVector{{X: 2}})
	assert.Equal(t, 2.0, res.MeanMag)
	assert.Equal(t, 1.0, res.MaxDeviation)
}
