//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"encoding/binary"

	"github.com/markkurossi/shamirprod/field"
	"github.com/markkurossi/shamirprod/share"
)

// SendHandshake writes the one-shot handshake frame: the local PID as
// a bare 4-byte big-endian value, with no length prefix.
func (c *Conn) SendHandshake(pid uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], pid)
	if err := c.writeBytes(buf[:]); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveHandshake reads the one-shot handshake frame and returns the
// remote's PID.
func (c *Conn) ReceiveHandshake() (uint32, error) {
	buf, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// SendField writes a data frame carrying a single field element: a
// 4-byte big-endian length of 8, followed by the element's canonical
// representative as 8 little-endian bytes.
func (c *Conn) SendField(f field.F) error {
	var payload [8]byte
	binary.LittleEndian.PutUint64(payload[:], f.Uint64())
	if err := c.sendDataFrame(payload[:]); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveField reads a data frame carrying a single field element.
func (c *Conn) ReceiveField() (field.F, error) {
	payload, err := c.receiveDataFrame()
	if err != nil {
		return field.Zero, err
	}
	if len(payload) != 8 {
		return field.Zero, ErrFrameTooLarge
	}
	return field.FromUint64(binary.LittleEndian.Uint64(payload)), nil
}

// SendShareSet writes a data frame carrying a share set, encoded per
// share.Set.MarshalBinary.
func (c *Conn) SendShareSet(s *share.Set) error {
	payload, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	if err := c.sendDataFrame(payload); err != nil {
		return err
	}
	return c.Flush()
}

// ReceiveShareSet reads a data frame carrying a share set.
func (c *Conn) ReceiveShareSet() (*share.Set, error) {
	payload, err := c.receiveDataFrame()
	if err != nil {
		return nil, err
	}
	set := share.NewSet()
	if err := set.UnmarshalBinary(payload); err != nil {
		return nil, err
	}
	return set, nil
}

func (c *Conn) sendDataFrame(payload []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if err := c.writeBytes(lenBuf[:]); err != nil {
		return err
	}
	return c.writeBytes(payload)
}

func (c *Conn) receiveDataFrame() ([]byte, error) {
	lenBuf, err := c.readBytes(4)
	if err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf)
	if n > MaxFrameLen {
		return nil, ErrFrameTooLarge
	}
	payload, err := c.readBytes(int(n))
	if err == ErrChannelClosed {
		// The length prefix has already been consumed, so EOF here
		// falls inside a frame.
		return nil, ErrShortRead
	}
	return payload, err
}
