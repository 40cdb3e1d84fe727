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

// shareInputs secret-shares the local input and exchanges shares with
// every other party concurrently, returning this party's share of
// every party's input, keyed by the input's owner.
func (s *Session) shareInputs(input field.F) (map[share.PID]field.F, error) {
	mine, err := s.sharing(input)
	if err != nil {
		return nil, err
	}
	toSend := make(map[share.PID]field.F, len(mine))
	for _, sh := range mine {
		toSend[sh.Owner] = sh.Value
	}

	result := make(map[share.PID]field.F, s.N())
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
			result[pid] = v
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result[s.Self()] = toSend[s.Self()]
	return result, nil
}
