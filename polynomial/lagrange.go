//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package polynomial

import "github.com/markkurossi/shamirprod/field"

// Lagrange returns the Lagrange basis coefficients L_0(x), ...,
// L_{k-1}(x) for the interpolation domain points, evaluated at x:
//
//	L_i(x) = prod_{j != i} (x - x_j) * (x_i - x_j)^-1
//
// Returns ErrDuplicatePoint if two points in the domain coincide.
func Lagrange(points []field.F, x field.F) ([]field.F, error) {
	if err := checkDistinct(points); err != nil {
		return nil, err
	}

	basis := make([]field.F, len(points))
	for i, xi := range points {
		l := field.One
		for j, xj := range points {
			if i == j {
				continue
			}
			numerator := x.Sub(xj)
			denominator := xi.Sub(xj)
			inv, err := denominator.Inv()
			if err != nil {
				// Unreachable: checkDistinct already excluded xi == xj.
				return nil, err
			}
			l = l.Mul(numerator.Mul(inv))
		}
		basis[i] = l
	}
	return basis, nil
}

// Interpolate evaluates, at x, the unique polynomial of degree < k
// passing through the k pairs (points[i], values[i]). Called with
// x = field.Zero to recover a shared secret.
func Interpolate(points, values []field.F, x field.F) (field.F, error) {
	basis, err := Lagrange(points, x)
	if err != nil {
		return field.Zero, err
	}

	result := field.Zero
	for i, v := range values {
		result = result.Add(v.Mul(basis[i]))
	}
	return result, nil
}

func checkDistinct(points []field.F) error {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Equal(points[j]) {
				return ErrDuplicatePoint
			}
		}
	}
	return nil
}
