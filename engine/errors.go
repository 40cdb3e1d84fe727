//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import "errors"

// ErrThresholdViolation is returned when a session is created with a
// corruption threshold that violates the honest-majority invariant
// n >= 2t+1.
var ErrThresholdViolation = errors.New("engine: threshold violates honest majority")

// ErrUnexpectedFrame is returned, wrapped, by Session.Run when the
// session is not in the mesh-ready state. The engine does not check
// received frames for kind or order.
var ErrUnexpectedFrame = errors.New("engine: unexpected frame")

// ErrPeerAborted names the error kind of a peer aborting mid-session.
// No code in this package returns it: a peer that disconnects or fails
// mid-session surfaces as an mpcerr.PeerError wrapping the underlying
// wire error.
var ErrPeerAborted = errors.New("engine: peer aborted")

// ErrEmptyProduct is returned when ProductTree is called with no
// operands.
var ErrEmptyProduct = errors.New("engine: product of zero operands")
