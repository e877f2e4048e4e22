package supercritical

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
ReynoldsSweep evaluates a correlation at n Reynolds numbers spaced
logarithmically between reMin and reMax, holding Pr and the options fixed.

	Returns:
		re: Reynolds numbers, [n]
		nu: Nusselt numbers, [n]

The first point that fails stops the sweep; its error wraps ErrDomain.
*/
func ReynoldsSweep(c Correlation, reMin, reMax float64, n int, pr float64, opts ...Option) (re, nu *mat.VecDense, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("sweep needs at least 2 points, got %d", n)
	}
	if !(reMin > 0 && reMin < reMax) {
		return nil, nil, errors.New("sweep bounds must satisfy 0 < reMin < reMax")
	}

	res := floats.LogSpan(make([]float64, n), reMin, reMax)
	nus := make([]float64, n)
	for i, r := range res {
		nus[i], err = c(r, pr, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("sweep point %d: %w", i, err)
		}
	}

	return mat.NewVecDense(n, res), mat.NewVecDense(n, nus), nil
}

// Increasing reports whether v is strictly increasing.
func Increasing(v mat.Vector) bool {
	for i := 1; i < v.Len(); i++ {
		if !(v.AtVec(i) > v.AtVec(i-1)) {
			return false
		}
	}
	return true
}
