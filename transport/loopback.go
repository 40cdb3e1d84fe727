//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package transport

import (
	"sort"

	"github.com/markkurossi/shamirprod/share"
	"github.com/markkurossi/shamirprod/wire"
)

// Loopback builds n in-memory Mesh values, one per party, fully
// connected to each other through wire.Pipe pairs. There is no
// network, no TLS, and no handshake frame: every connection already
// knows both endpoints by construction. Used by the engine's tests to
// run the full protocol deterministically within a single process.
func Loopback(n int) []Mesh {
	meshes := make([]*mesh, n)
	for i := range meshes {
		m := &mesh{
			self:  share.PID(i),
			conns: make(map[share.PID]*wire.Conn),
		}
		meshes[i] = m
	}

	var pids []share.PID
	for i := 0; i < n; i++ {
		pids = append(pids, share.PID(i))
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	for _, m := range meshes {
		m.pids = pids
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ci, cj := wire.Pipe()
			meshes[i].conns[share.PID(j)] = ci
			meshes[j].conns[share.PID(i)] = cj
		}
	}

	out := make([]Mesh, n)
	for i, m := range meshes {
		out[i] = m
	}
	return out
}
