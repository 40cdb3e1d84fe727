//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import "github.com/markkurossi/shamirprod/field"

// productTree folds operands into a single share of their product by
// repeated pairwise multiplication: acc = mul(acc, operands[i]). The
// tree is left-leaning rather than balanced, since each step depends
// on the running product and nothing about this sub-protocol gets
// cheaper from balancing it.
func (s *Session) productTree(operands []field.F) (field.F, error) {
	if len(operands) == 0 {
		return field.Zero, ErrEmptyProduct
	}
	acc := operands[0]
	s.multiplyAt = 0
	for _, v := range operands[1:] {
		next, err := s.multiply(acc, v)
		if err != nil {
			return field.Zero, err
		}
		acc = next
		s.multiplyAt++
	}
	return acc, nil
}
