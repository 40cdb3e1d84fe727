//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpcerr wraps a sentinel error from one of the protocol
// packages with the PID of the peer it concerns, so callers at the
// top of the call stack can report a single human-readable line
// naming both the error kind and the offending party.
package mpcerr

import (
	"errors"
	"fmt"

	"github.com/markkurossi/shamirprod/share"
)

// PeerError names the party a protocol error is attributed to.
type PeerError struct {
	Peer  share.PID
	Cause error
}

// Peer wraps cause as a PeerError naming peer.
func Peer(peer share.PID, cause error) error {
	if cause == nil {
		return nil
	}
	return &PeerError{Peer: peer, Cause: cause}
}

func (e *PeerError) Error() string {
	return fmt.Sprintf("party %d: %v", e.Peer, e.Cause)
}

func (e *PeerError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error's peer matches target's peer and its
// cause matches per errors.Is; it lets errors.Is(err, mpcerr.Peer(id,
// sentinel)) work against a *PeerError built with the same sentinel.
func (e *PeerError) Is(target error) bool {
	other, ok := target.(*PeerError)
	if !ok {
		return false
	}
	return e.Peer == other.Peer && errors.Is(e.Cause, other.Cause)
}
