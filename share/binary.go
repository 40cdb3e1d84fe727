//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/shamirprod/field"
)

// recordSize is the encoded size of a single (PID, F) record: a
// 4-byte big-endian PID followed by an 8-byte little-endian field
// value.
const recordSize = 4 + 8

// MarshalBinary encodes the set as a 4-byte big-endian count k
// followed by k records of (4-byte big-endian PID, 8-byte
// little-endian field value), in insertion order.
func (s *Set) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4+s.Len()*recordSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(s.Len()))

	off := 4
	for _, id := range s.order {
		binary.BigEndian.PutUint32(buf[off:off+4], uint32(id))
		binary.LittleEndian.PutUint64(buf[off+4:off+12], s.byPID[id].Uint64())
		off += recordSize
	}
	return buf, nil
}

// UnmarshalBinary decodes a share set encoded by MarshalBinary.
func (s *Set) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("share: truncated set header")
	}
	k := int(binary.BigEndian.Uint32(data[0:4]))

	want := 4 + k*recordSize
	if len(data) != want {
		return fmt.Errorf("share: set payload length %d, want %d",
			len(data), want)
	}

	s.order = nil
	s.byPID = make(map[PID]field.F, k)

	off := 4
	for i := 0; i < k; i++ {
		pid := PID(binary.BigEndian.Uint32(data[off : off+4]))
		v := binary.LittleEndian.Uint64(data[off+4 : off+12])
		s.Add(pid, field.FromUint64(v))
		off += recordSize
	}
	return nil
}
