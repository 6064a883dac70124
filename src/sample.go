package main

import (
	"math"

	"github.com/xernobyl/pvector/src/sketch"
	"github.com/xernobyl/pvector/src/vec"
)

type SampleResult struct {
	Count        int
	MeanMag      float64
	MaxDeviation float64 // largest | |v| - 1 |
	Centroid     vec.PVector
}

// Sample draws count unit vectors on the circle (dims 2) or sphere (dims 3).
func Sample(sk *sketch.Context, count, dims int) []vec.PVector {
	vs := make([]vec.PVector, count)
	for i := range vs {
		if dims == 2 {
			vs[i].Random2D(sk)
		} else {
			vs[i].Random3D(sk)
		}
	}
	return vs
}

func Measure(vs []vec.PVector) SampleResult {
	res := SampleResult{Count: len(vs), Centroid: vec.Centroid(vs)}
	if len(vs) == 0 {
		return res
	}

	var sum float64
	for _, v := range vs {
		m := v.Mag()
		sum += m
		res.MaxDeviation = math.Max(res.MaxDeviation, math.Abs(m-1))
	}
	res.MeanMag = sum / float64(len(vs))
	return res
}
