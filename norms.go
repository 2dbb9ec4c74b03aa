package quadvec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm2 is the Euclidean norm, the usual choice for vector-valued error
// estimation.
func Norm2(v []float64) float64 {
	return floats.Norm(v, 2)
}

// NormInf is the max norm: the largest absolute component.
func NormInf(v []float64) float64 {
	return floats.Norm(v, math.Inf(1))
}

// Norm1 is the sum of absolute components.
func Norm1(v []float64) float64 {
	return floats.Norm(v, 1)
}
