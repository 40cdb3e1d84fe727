//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package polynomial

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/markkurossi/shamirprod/field"
)

func TestRandomEvaluatesToConstantAtZero(t *testing.T) {
	for d := 0; d <= 10; d++ {
		secret, err := field.Random(rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		p, err := Random(secret, d, rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		if got := p.Evaluate(field.Zero); !got.Equal(secret) {
			t.Fatalf("degree %d: p(0) = %v, want %v", d, got, secret)
		}
	}
}

func TestInterpolationRecoversPolynomial(t *testing.T) {
	const maxDegree = 20
	const samples = 30

	for s := 0; s < samples; s++ {
		degree := s % (maxDegree + 1)
		secret, err := field.Random(rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		p, err := Random(secret, degree, rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}

		points := make([]field.F, degree+1)
		values := make([]field.F, degree+1)
		for i := 0; i <= degree; i++ {
			points[i] = field.FromUint64(uint64(i + 1))
			values[i] = p.Evaluate(points[i])
		}

		target, err := field.Random(rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}

		got, err := Interpolate(points, values, target)
		if err != nil {
			t.Fatalf("Interpolate: %v", err)
		}
		want := p.Evaluate(target)
		if !got.Equal(want) {
			t.Fatalf("degree %d: interpolate(%v) = %v, want %v",
				degree, target, got, want)
		}
	}
}

func TestInterpolateAtZeroRecoversSecret(t *testing.T) {
	secret := field.FromUint64(42)
	p, err := Random(secret, 3, rand.Reader)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	points := []field.F{
		field.FromUint64(1), field.FromUint64(2),
		field.FromUint64(3), field.FromUint64(4),
	}
	values := make([]field.F, len(points))
	for i, x := range points {
		values[i] = p.Evaluate(x)
	}

	got, err := Interpolate(points, values, field.Zero)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if !got.Equal(secret) {
		t.Fatalf("interpolate(0) = %v, want %v", got, secret)
	}
}

func TestLagrangeDuplicatePoint(t *testing.T) {
	points := []field.F{field.FromUint64(1), field.FromUint64(1)}
	_, err := Lagrange(points, field.Zero)
	if !errors.Is(err, ErrDuplicatePoint) {
		t.Fatalf("expected ErrDuplicatePoint, got %v", err)
	}
}

func TestEvaluateKnownPolynomial(t *testing.T) {
	// f(X) = 1 + 2X + 3X^2, f(2) = 1 + 4 + 12 = 17
	p := New([]field.F{
		field.FromUint64(1), field.FromUint64(2), field.FromUint64(3),
	})
	got := p.Evaluate(field.FromUint64(2))
	if got.Uint64() != 17 {
		t.Fatalf("f(2) = %v, want 17", got)
	}
}

// bigMod is the Mersenne61 prime as a big.Int, used only to sanity
// check the concrete scenario in TestModulusValue against spec.md.
func bigMod() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
}

func TestModulusValue(t *testing.T) {
	if bigMod().Uint64() != field.Modulus {
		t.Fatalf("modulus mismatch")
	}
}
