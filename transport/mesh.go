//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package transport builds the all-to-all connection mesh the protocol
// engine runs over: every party ends up holding one wire.Conn to every
// other party, mutually authenticated over TLS. Bootstrap follows a
// fixed dialing convention to avoid duplicate connections between the
// same pair of parties: party i dials every party j > i, and accepts
// exactly i inbound connections (one from each party j < i).
package transport

import (
	"crypto/tls"
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/markkurossi/shamirprod/share"
	"github.com/markkurossi/shamirprod/wire"
)

// Mesh gives the protocol engine access to every other party's
// connection by PID.
type Mesh interface {
	// Self is the local party's ID.
	Self() share.PID

	// N is the number of parties in the mesh, including self.
	N() int

	// PIDs lists every party ID in the mesh, in ascending order,
	// including self.
	PIDs() []share.PID

	// Conn returns the connection to peer id. It panics if id is the
	// local party or not a member of the mesh; callers only ever
	// index PIDs() returned by this same Mesh.
	Conn(id share.PID) *wire.Conn

	// Close tears down every connection in the mesh.
	Close() error
}

// mesh is the TLS-backed Mesh implementation used outside tests.
type mesh struct {
	self  share.PID
	pids  []share.PID
	conns map[share.PID]*wire.Conn
}

// Addresses maps every party ID (other than the caller's own) to its
// dial address "host:port".
type Addresses map[share.PID]string

// Config bounds the bootstrap dialing loop.
type Config struct {
	// ListenAddr is the local "host:port" to accept inbound
	// connections on.
	ListenAddr string

	// Peers gives the dial address for every other party.
	Peers Addresses

	// TLS configures both the listener and the dialer. It must carry
	// the local certificate and a trusted peer certificate pool.
	TLS *tls.Config

	// DialTimeout bounds each individual dial attempt, and also sets
	// the single retry deadline shared by every dial of a Bootstrap
	// call.
	DialTimeout time.Duration

	// RetrySleep is the pause between failed dial attempts.
	RetrySleep time.Duration
}

// Bootstrap builds the TLS mesh for party self among n parties total,
// blocking until every connection is established.
func Bootstrap(self share.PID, n int, cfg Config) (Mesh, error) {
	m := &mesh{
		self:  self,
		conns: make(map[share.PID]*wire.Conn),
	}
	for i := 0; i < n; i++ {
		m.pids = append(m.pids, share.PID(i))
	}
	sort.Slice(m.pids, func(i, j int) bool { return m.pids[i] < m.pids[j] })

	listener, err := tls.Listen("tcp", cfg.ListenAddr, cfg.TLS)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListenFailed, err)
	}
	defer listener.Close()

	dialTimeout := cfg.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = 5 * time.Second
	}
	deadline := time.Now().Add(dialTimeout)

	expectInbound := int(self)
	inbound := make(chan *wire.Conn, expectInbound)
	acceptErr := make(chan error, 1)

	go func() {
		for i := 0; i < expectInbound; i++ {
			nc, err := listener.Accept()
			if err != nil {
				acceptErr <- err
				return
			}
			inbound <- wire.NewConn(nc)
		}
	}()

	// Dial every party with a higher PID than ours.
	for _, id := range m.pids {
		if id <= self {
			continue
		}
		addr, ok := cfg.Peers[id]
		if !ok {
			return nil, fmt.Errorf("%w: no address for party %d",
				ErrMissingPeer, id)
		}
		c, err := dialWithRetry(addr, cfg, deadline)
		if err != nil {
			return nil, err
		}
		if err := c.SendHandshake(uint32(self)); err != nil {
			c.Close()
			return nil, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
		}
		m.conns[id] = c
	}

	// Drain the expected inbound connections, tagging each by the PID
	// it announces in its handshake frame.
	received := make(map[share.PID]*wire.Conn)
	for i := 0; i < expectInbound; i++ {
		select {
		case c := <-inbound:
			pid, err := c.ReceiveHandshake()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
			}
			received[share.PID(pid)] = c
		case err := <-acceptErr:
			return nil, fmt.Errorf("%w: %v", ErrListenFailed, err)
		}
	}
	for pid, c := range received {
		m.conns[pid] = c
	}

	return m, nil
}

// dialWithRetry dials addr, retrying on failure until deadline. deadline
// is shared across every peer dialed in a single Bootstrap call, so it
// bounds the dialer role's total cumulative wait, not a per-peer budget.
func dialWithRetry(addr string, cfg Config, deadline time.Time) (*wire.Conn, error) {
	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	sleep := cfg.RetrySleep
	if sleep == 0 {
		sleep = time.Second
	}

	for {
		d := &net.Dialer{Timeout: timeout}
		nc, err := tls.DialWithDialer(d, "tcp", addr, cfg.TLS)
		if err == nil {
			return wire.NewConn(nc), nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s: %v", ErrConnectTimeout, addr, err)
		}
		time.Sleep(sleep)
	}
}

func (m *mesh) Self() share.PID   { return m.self }
func (m *mesh) N() int            { return len(m.pids) }
func (m *mesh) PIDs() []share.PID { return m.pids }

func (m *mesh) Conn(id share.PID) *wire.Conn {
	c, ok := m.conns[id]
	if !ok {
		panic(fmt.Sprintf("transport: no connection to party %d", id))
	}
	return c
}

func (m *mesh) Close() error {
	var first error
	for _, c := range m.conns {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
