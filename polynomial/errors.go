//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package polynomial

import "errors"

// ErrDuplicatePoint is returned when two evaluation points in an
// interpolation domain coincide, making the Lagrange basis undefined.
var ErrDuplicatePoint = errors.New("polynomial: duplicate evaluation point")
