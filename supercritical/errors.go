package supercritical

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is wrapped by every error caused by an input outside the
	// numeric domain of a correlation.
	ErrDomain = errors.New("numeric domain error")

	// ErrUnknownMethod is returned by Lookup for a name that is not registered.
	ErrUnknownMethod = errors.New("unknown correlation")
)

// DomainError records the correlation and flow condition that produced a
// non-finite Nusselt number.
type DomainError struct {
	Method string
	Re     float64
	Pr     float64
	Nu     float64 // NaN or ±Inf
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: Nu=%v for Re=%g, Pr=%g: %v", e.Method, e.Nu, e.Re, e.Pr, ErrDomain)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// finite passes nu through, or reports it as a DomainError.
func finite(method string, re, pr, nu float64) (float64, error) {
	if math.IsNaN(nu) || math.IsInf(nu, 0) {
		return nu, &DomainError{Method: method, Re: re, Pr: pr, Nu: nu}
	}
	return nu, nil
}
