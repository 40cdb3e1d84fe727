//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/shamirprod/field"
	"github.com/markkurossi/shamirprod/mpcerr"
	"github.com/markkurossi/shamirprod/share"
)

// multiply runs the degree-reduction multiplication sub-protocol on
// two shares this party holds of operands a and b, returning this
// party's share of a*b.
//
// Each party's local product a_i*b_i lies on a degree-2t polynomial
// through the true product, not a degree-t one. To bring the degree
// back down without revealing anything, every party re-shares its
// local product at degree t; every party then receives all n fresh
// re-shares, but only the first 2t+1 (lowest PID) actually contribute
// to the recombination, weighted by s.lagrangeBasis: that subset
// alone already determines the degree-2t polynomial's value at zero,
// which is exactly a*b.
func (s *Session) multiply(a, b field.F) (field.F, error) {
	local := a.Mul(b)

	mine, err := s.sharing(local)
	if err != nil {
		return field.Zero, err
	}
	toSend := make(map[share.PID]field.F, len(mine))
	for _, sh := range mine {
		toSend[sh.Owner] = sh.Value
	}

	received := make(map[share.PID]field.F, s.N())
	var mu sync.Mutex
	var g errgroup.Group

	for _, pid := range s.mesh.PIDs() {
		if pid == s.Self() {
			continue
		}
		pid := pid
		g.Go(func() error {
			conn := s.mesh.Conn(pid)
			if err := conn.SendField(toSend[pid]); err != nil {
				return mpcerr.Peer(pid, err)
			}
			v, err := conn.ReceiveField()
			if err != nil {
				return mpcerr.Peer(pid, err)
			}
			mu.Lock()
			received[pid] = v
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return field.Zero, err
	}
	received[s.Self()] = toSend[s.Self()]

	var product field.F
	for i, pid := range s.corePIDs {
		term := received[pid].Mul(s.lagrangeBasis[i])
		product = product.Add(term)
	}
	return product, nil
}
