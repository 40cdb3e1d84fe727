//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package polynomial implements the polynomial sampling, evaluation,
// and Lagrange interpolation machinery used to share and reconstruct
// secrets over field.F.
package polynomial

import (
	"io"

	"github.com/markkurossi/shamirprod/field"
)

// Polynomial is a finite sequence of coefficients (a0, a1, ..., ad)
// evaluated as a0 + a1*X + ... + ad*X^d. A Polynomial is ephemeral:
// built during sharing, evaluated, and discarded.
type Polynomial struct {
	coeffs []field.F
}

// New creates a Polynomial from explicit coefficients, lowest degree
// first.
func New(coeffs []field.F) *Polynomial {
	return &Polynomial{coeffs: coeffs}
}

// Random creates a Polynomial of degree d with constant term
// constant and the remaining d coefficients sampled uniformly from
// r. Used to share a secret at threshold d.
func Random(constant field.F, d int, r io.Reader) (*Polynomial, error) {
	coeffs := make([]field.F, d+1)
	coeffs[0] = constant
	for i := 1; i <= d; i++ {
		c, err := field.Random(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{coeffs: coeffs}, nil
}

// Degree returns the highest power of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns the polynomial's coefficients, lowest degree
// first. The caller must not modify the returned slice.
func (p *Polynomial) Coefficients() []field.F {
	return p.coeffs
}

// Constant returns the polynomial's constant term, a0.
func (p *Polynomial) Constant() field.F {
	return p.coeffs[0]
}

// Evaluate computes p(x) using Horner's rule.
func (p *Polynomial) Evaluate(x field.F) field.F {
	result := field.Zero
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}
