//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package field

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Random draws a uniformly distributed element of F from r. It reads
// 8 bytes at a time, masks to 61 bits, and rejects values equal to
// Modulus (probability 2^-61), resampling until an in-range value is
// found.
func Random(r io.Reader) (F, error) {
	var buf [8]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Zero, err
		}
		v := binary.LittleEndian.Uint64(buf[:]) & Modulus
		if v != Modulus {
			return F{v: v}, nil
		}
	}
}

// DeterministicReader returns an io.Reader producing a reproducible
// keystream derived from seed, for use in tests that need repeatable
// field samples. The keystream is the output of ChaCha20 with a fixed
// zero nonce keyed by seed.
func DeterministicReader(seed [32]byte) io.Reader {
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		// chacha20.NewUnauthenticatedCipher only fails on bad key/nonce
		// sizes, both of which are fixed constants here.
		panic(err)
	}
	return &keystreamReader{cipher: cipher}
}

type keystreamReader struct {
	cipher *chacha20.Cipher
}

func (k *keystreamReader) Read(p []byte) (int, error) {
	zero := make([]byte, len(p))
	k.cipher.XORKeyStream(p, zero)
	return len(p), nil
}
