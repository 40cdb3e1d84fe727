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

// openAndReconstruct broadcasts this party's share of the final
// result to every other party, collects theirs, and interpolates the
// secret at zero.
func (s *Session) openAndReconstruct(mine field.F) (field.F, error) {
	set := share.NewSet()
	set.Add(s.Self(), mine)
	var mu sync.Mutex
	var g errgroup.Group

	for _, pid := range s.mesh.PIDs() {
		if pid == s.Self() {
			continue
		}
		pid := pid
		g.Go(func() error {
			conn := s.mesh.Conn(pid)
			if err := conn.SendField(mine); err != nil {
				return mpcerr.Peer(pid, err)
			}
			v, err := conn.ReceiveField()
			if err != nil {
				return mpcerr.Peer(pid, err)
			}
			mu.Lock()
			set.Add(pid, v)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return field.Zero, err
	}

	return share.Reconstruct(set, s.t)
}
