//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package field

import "errors"

// ErrZeroInverse is returned when inverting the zero element.
var ErrZeroInverse = errors.New("field: zero has no multiplicative inverse")
