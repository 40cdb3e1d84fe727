//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"errors"
	"testing"

	"github.com/markkurossi/shamirprod/field"
	"github.com/markkurossi/shamirprod/share"
)

func TestHandshakeRoundTrip(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	go func() {
		if err := a.SendHandshake(7); err != nil {
			t.Errorf("SendHandshake: %v", err)
		}
	}()

	pid, err := b.ReceiveHandshake()
	if err != nil {
		t.Fatalf("ReceiveHandshake: %v", err)
	}
	if pid != 7 {
		t.Fatalf("pid = %d, want 7", pid)
	}
}

func TestFieldRoundTripFIFO(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	values := []uint64{0, 1, 2, field.Modulus - 1, 1 << 40}
	done := make(chan error, 1)
	go func() {
		for _, v := range values {
			if err := a.SendField(field.FromUint64(v)); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for _, v := range values {
		got, err := b.ReceiveField()
		if err != nil {
			t.Fatalf("ReceiveField: %v", err)
		}
		if got.Uint64() != v%field.Modulus {
			t.Fatalf("got %v, want %v", got.Uint64(), v%field.Modulus)
		}
	}
	if err := <-done; err != nil {
		t.Fatalf("sender: %v", err)
	}
}

func TestShareSetRoundTrip(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	set := share.NewSet()
	set.Add(share.PID(0), field.FromUint64(11))
	set.Add(share.PID(3), field.FromUint64(22))

	go func() {
		if err := a.SendShareSet(set); err != nil {
			t.Errorf("SendShareSet: %v", err)
		}
	}()

	got, err := b.ReceiveShareSet()
	if err != nil {
		t.Fatalf("ReceiveShareSet: %v", err)
	}
	if got.Len() != set.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), set.Len())
	}
	for _, id := range set.PIDs() {
		want, _ := set.Get(id)
		gotV, ok := got.Get(id)
		if !ok || !gotV.Equal(want) {
			t.Fatalf("PID %d: got %v, want %v", id, gotV, want)
		}
	}
}

func TestReceiveFieldShortRead(t *testing.T) {
	a, b := Pipe()
	defer b.Close()

	// Close the sender after writing a length prefix but no payload,
	// forcing the receiver to observe a short read.
	go func() {
		var lenBuf [4]byte
		lenBuf[3] = 8
		_ = a.writeBytes(lenBuf[:])
		_ = a.Flush()
		a.Close()
	}()

	_, err := b.ReceiveField()
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestReceiveFrameTooLarge(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	go func() {
		var lenBuf [4]byte
		lenBuf[0] = 0xff // absurdly large length prefix
		_ = a.writeBytes(lenBuf[:])
		_ = a.Flush()
	}()

	_, err := b.ReceiveField()
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
}
