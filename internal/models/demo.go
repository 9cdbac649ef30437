package models

import (
	"math"
	"math/rand/v2"
)

// SineDataset samples a 1 Hz sine wave over one second.
func SineDataset() *Dataset {
	const n = 100
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		t := float64(i) * 0.01
		x[i] = t
		y[i] = math.Sin(2 * math.Pi * t)
	}
	return &Dataset{x: x, y: y, title: "Some sine waves"}
}

// RandomDataset returns n uniform samples in [0,1) indexed from 0.
func RandomDataset(n int, rng *rand.Rand) *Dataset {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = float64(i)
		y[i] = rng.Float64()
	}
	return &Dataset{x: x, y: y, title: "Random number plot"}
}

// SampleDataset is the fixed four-point series shown in the XY demo tab.
func SampleDataset() *Dataset {
	return &Dataset{
		x: []float64{1, 2, 3, 4},
		y: []float64{3, 5, 8, 8},
	}
}
