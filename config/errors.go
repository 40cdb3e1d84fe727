//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package config

import "errors"

// ErrMissingField is returned when a required field is absent from
// the configuration file.
var ErrMissingField = errors.New("config: missing field")

// ErrInvalidIP is returned when a peer_ips entry does not parse as an
// IP address.
var ErrInvalidIP = errors.New("config: invalid peer IP")

// ErrThresholdTooLarge is returned when the corruption threshold does
// not satisfy the honest-majority invariant n >= 2t+1.
var ErrThresholdTooLarge = errors.New("config: threshold too large for honest majority")

// ErrInconsistentN is returned when the party count implied by one
// list-shaped field disagrees with peer_ips.len().
var ErrInconsistentN = errors.New("config: party count disagrees with peer_ips.len()")
