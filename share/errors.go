//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import "errors"

// ErrInsufficientShares is returned when reconstruction is attempted
// from fewer than t+1 shares.
var ErrInsufficientShares = errors.New("share: insufficient shares for reconstruction")
