package supercritical

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result is the outcome of one correlation within a Comparison.
type Result struct {
	Method string
	Nu     float64
	Err    error
}

// Comparison collects every registered correlation evaluated at one flow
// condition. The statistics cover the successful results only; they are NaN
// when no correlation succeeded.
type Comparison struct {
	Results []Result
	Mean    float64
	StdDev  float64 // sample standard deviation, 0 for a single result
	Min     float64
	Max     float64
	OK      int // number of results without error
}

// Compare evaluates every registered correlation with the same inputs.
// A failing correlation is recorded in its Result and does not stop the others.
func Compare(re, pr float64, opts ...Option) Comparison {
	return compare(methods, re, pr, opts)
}

// CompareMethods is Compare restricted to the named correlations, in the
// given order. Unknown names fail with ErrUnknownMethod before anything is
// evaluated.
func CompareMethods(names []string, re, pr float64, opts ...Option) (Comparison, error) {
	ms := make([]method, len(names))
	for i, name := range names {
		m, err := lookupMethod(name)
		if err != nil {
			return Comparison{}, err
		}
		ms[i] = m
	}
	return compare(ms, re, pr, opts), nil
}

func compare(ms []method, re, pr float64, opts []Option) Comparison {
	var cmp Comparison
	cmp.Results = make([]Result, len(ms))

	values := make([]float64, 0, len(ms))
	for i, m := range ms {
		nu, err := m.fn(re, pr, opts...)
		cmp.Results[i] = Result{Method: m.name, Nu: nu, Err: err}
		if err == nil {
			values = append(values, nu)
		}
	}
	cmp.OK = len(values)

	switch len(values) {
	case 0:
		cmp.Mean, cmp.StdDev, cmp.Min, cmp.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return cmp
	case 1:
		cmp.Mean = values[0]
	default:
		cmp.Mean, cmp.StdDev = stat.MeanStdDev(values, nil)
	}
	cmp.Min = floats.Min(values)
	cmp.Max = floats.Max(values)

	return cmp
}
