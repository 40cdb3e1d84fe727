//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package share implements Shamir shares and share sets: the pairs
// (party ID, field value) produced by sharing a secret, and the
// insertion-ordered collections used to reconstruct it.
package share

import (
	"io"

	"github.com/markkurossi/shamirprod/field"
	"github.com/markkurossi/shamirprod/polynomial"
)

// PID is a party identifier, 0 <= PID < n.
type PID uint32

// Point returns the evaluation point assigned to PID, F(PID+1). Zero
// is reserved for the secret, so no party's point is ever zero.
func (id PID) Point() field.F {
	return field.FromUint64(uint64(id) + 1)
}

// Share is a single party's evaluation of a secret-sharing
// polynomial.
type Share struct {
	Owner PID
	Value field.F
}

// Set is an insertion-ordered collection of shares, at most one per
// PID.
type Set struct {
	order []PID
	byPID map[PID]field.F
}

// NewSet creates an empty share set.
func NewSet() *Set {
	return &Set{byPID: make(map[PID]field.F)}
}

// Add inserts a share into the set, overwriting any existing share
// for the same PID while preserving the original insertion order.
func (s *Set) Add(owner PID, value field.F) {
	if _, ok := s.byPID[owner]; !ok {
		s.order = append(s.order, owner)
	}
	s.byPID[owner] = value
}

// Len returns the number of shares in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Get returns the share owned by id, if present.
func (s *Set) Get(id PID) (field.F, bool) {
	v, ok := s.byPID[id]
	return v, ok
}

// PIDs returns the owners of the set's shares in insertion order.
func (s *Set) PIDs() []PID {
	out := make([]PID, len(s.order))
	copy(out, s.order)
	return out
}

// Shares returns the set's shares in insertion order.
func (s *Set) Shares() []Share {
	out := make([]Share, len(s.order))
	for i, id := range s.order {
		out[i] = Share{Owner: id, Value: s.byPID[id]}
	}
	return out
}

// Sharing produces a sharing of secret at threshold t for n parties:
// a random degree-t polynomial with constant term secret, evaluated
// at F(1), ..., F(n). The i-th entry is party i's share.
func Sharing(secret field.F, n int, t int, r io.Reader) ([]Share, error) {
	poly, err := polynomial.Random(secret, t, r)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		pid := PID(i)
		shares[i] = Share{Owner: pid, Value: poly.Evaluate(pid.Point())}
	}
	return shares, nil
}

// Reconstruct recovers the secret embedded in a degree-t sharing from
// a share set of at least t+1 shares, by Lagrange interpolation at
// x* = 0. Fails with ErrInsufficientShares if the set is too small.
func Reconstruct(s *Set, t int) (field.F, error) {
	if s.Len() < t+1 {
		return field.Zero, ErrInsufficientShares
	}

	shares := s.Shares()[:t+1]
	points := make([]field.F, len(shares))
	values := make([]field.F, len(shares))
	for i, sh := range shares {
		points[i] = sh.Owner.Point()
		values[i] = sh.Value
	}

	return polynomial.Interpolate(points, values, field.Zero)
}
