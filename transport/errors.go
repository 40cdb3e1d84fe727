//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package transport

import "errors"

// ErrConnectTimeout is returned when dialing a peer keeps failing
// until the bootstrap deadline elapses.
var ErrConnectTimeout = errors.New("transport: connect timeout")

// ErrHandshakeFailed is returned when a peer's handshake frame cannot
// be sent or received.
var ErrHandshakeFailed = errors.New("transport: handshake failed")

// ErrListenFailed is returned when the local listener cannot be
// created or fails while accepting inbound connections.
var ErrListenFailed = errors.New("transport: listen failed")

// ErrMissingPeer is returned when the bootstrap config has no dial
// address for a party the mesh needs to connect to.
var ErrMissingPeer = errors.New("transport: missing peer address")
