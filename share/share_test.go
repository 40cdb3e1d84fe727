//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/markkurossi/shamirprod/field"
)

func TestSharingReconstructionRoundTrip(t *testing.T) {
	const samples = 20
	for i := 0; i < samples; i++ {
		secret, err := field.Random(rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		n := 5 + i%10
		tThresh := n / 2

		shares, err := Sharing(secret, n, tThresh, rand.Reader)
		if err != nil {
			t.Fatalf("Sharing: %v", err)
		}

		set := NewSet()
		for _, sh := range shares[:tThresh+1] {
			set.Add(sh.Owner, sh.Value)
		}

		got, err := Reconstruct(set, tThresh)
		if err != nil {
			t.Fatalf("Reconstruct: %v", err)
		}
		if !got.Equal(secret) {
			t.Fatalf("n=%d t=%d: reconstructed %v, want %v", n, tThresh, got, secret)
		}
	}
}

func TestReconstructInsufficientShares(t *testing.T) {
	secret := field.FromUint64(7)
	shares, err := Sharing(secret, 5, 2, rand.Reader)
	if err != nil {
		t.Fatalf("Sharing: %v", err)
	}

	set := NewSet()
	for _, sh := range shares[:2] {
		set.Add(sh.Owner, sh.Value)
	}

	_, err = Reconstruct(set, 2)
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("expected ErrInsufficientShares, got %v", err)
	}
}

func TestSetAddOverwritesPreservesOrder(t *testing.T) {
	set := NewSet()
	set.Add(PID(0), field.FromUint64(1))
	set.Add(PID(1), field.FromUint64(2))
	set.Add(PID(0), field.FromUint64(99))

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	pids := set.PIDs()
	if len(pids) != 2 || pids[0] != PID(0) || pids[1] != PID(1) {
		t.Fatalf("unexpected PID order: %v", pids)
	}
	v, ok := set.Get(PID(0))
	if !ok || v.Uint64() != 99 {
		t.Fatalf("Get(0) = (%v, %v), want (99, true)", v, ok)
	}
}

func TestSetBinaryRoundTrip(t *testing.T) {
	set := NewSet()
	set.Add(PID(0), field.FromUint64(10))
	set.Add(PID(2), field.FromUint64(field.Modulus-1))

	data, err := set.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var decoded Set
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	if decoded.Len() != set.Len() {
		t.Fatalf("Len() = %d, want %d", decoded.Len(), set.Len())
	}
	for _, id := range set.PIDs() {
		want, _ := set.Get(id)
		got, ok := decoded.Get(id)
		if !ok || !got.Equal(want) {
			t.Fatalf("PID %d: got %v, want %v", id, got, want)
		}
	}
}

func TestPointReservesZeroForSecret(t *testing.T) {
	for i := 0; i < 10; i++ {
		if PID(i).Point().IsZero() {
			t.Fatalf("PID %d evaluation point is zero", i)
		}
	}
}
