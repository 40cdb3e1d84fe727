//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package engine runs the protocol session: it shares the local
// party's input, multiplies every party's share together through a
// sequence of degree-reduction multiplications, and opens the final
// product share to reconstruct the result.
package engine

import (
	"fmt"
	"io"

	"github.com/markkurossi/shamirprod/env"
	"github.com/markkurossi/shamirprod/field"
	"github.com/markkurossi/shamirprod/polynomial"
	"github.com/markkurossi/shamirprod/share"
	"github.com/markkurossi/shamirprod/transport"
)

// State names the session's position in the protocol.
type State int

// Session states, in the order a successful run passes through them.
const (
	StateInit State = iota
	StateMeshReady
	StateInputShared
	StateMultiplying
	StateReconstructing
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateMeshReady:
		return "mesh-ready"
	case StateInputShared:
		return "input-shared"
	case StateMultiplying:
		return "multiplying"
	case StateReconstructing:
		return "reconstructing"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Session holds the state one party needs to run the product
// protocol: its mesh of connections, the honest-majority threshold,
// and the Lagrange recombination vector every multiplication reuses.
type Session struct {
	mesh transport.Mesh
	t    int
	rand io.Reader

	// corePIDs are the lowest-PID 2t+1 parties of the mesh, the fixed
	// evaluation-point set the multiplication sub-protocol's Lagrange
	// recombination vector is computed over.
	corePIDs      []share.PID
	lagrangeBasis []field.F

	state      State
	multiplyAt int
	abortErr   error

	timing *Timing
}

// New creates a session for mesh with corruption threshold t. A nil
// rand falls back to env.Default's configured entropy source.
// It rejects a threshold that violates the honest-majority invariant
// n >= 2t+1.
func New(mesh transport.Mesh, t int, rand io.Reader) (*Session, error) {
	n := mesh.N()
	if n < 2*t+1 {
		return nil, fmt.Errorf("%w: n=%d, t=%d", ErrThresholdViolation, n, t)
	}
	if rand == nil {
		rand = env.Default.GetRandom()
	}

	// The multiplication sub-protocol recombines over a fixed basis of
	// the first 2t+1 evaluation points (lowest PID), per spec: any
	// 2t+1 of the n fresh degree-t re-shares determine the degree-2t
	// polynomial's value at zero, and fixing the subset keeps the
	// basis deterministic across parties without needing agreement.
	corePIDs := mesh.PIDs()[:2*t+1]
	points := make([]field.F, len(corePIDs))
	for i, pid := range corePIDs {
		points[i] = pid.Point()
	}
	basis, err := polynomial.Lagrange(points, field.Zero)
	if err != nil {
		return nil, err
	}

	return &Session{
		mesh:          mesh,
		t:             t,
		rand:          rand,
		corePIDs:      corePIDs,
		lagrangeBasis: basis,
		state:         StateMeshReady,
		timing:        NewTiming(),
	}, nil
}

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// Self is the local party's ID.
func (s *Session) Self() share.PID { return s.mesh.Self() }

// N is the number of parties in the session.
func (s *Session) N() int { return s.mesh.N() }

// Threshold is the configured corruption threshold t.
func (s *Session) Threshold() int { return s.t }

// abort marks the session aborted with reason, mirroring a
// semi-honest peer deviating from the protocol or disconnecting
// mid-run.
func (s *Session) abort(reason error) error {
	s.state = StateAborted
	s.abortErr = reason
	return reason
}

// Run executes the whole protocol for this party's input and returns
// the reconstructed product of every party's input.
func (s *Session) Run(input field.F) (field.F, error) {
	if s.state != StateMeshReady {
		return field.Zero, s.abort(fmt.Errorf("%w: session not mesh-ready", ErrUnexpectedFrame))
	}

	sample := s.timing.Sample("share inputs")
	inputShares, err := s.shareInputs(input)
	sample.Finish()
	if err != nil {
		return field.Zero, s.abort(err)
	}
	s.state = StateInputShared

	s.state = StateMultiplying
	operands := make([]field.F, 0, s.N())
	for _, pid := range s.mesh.PIDs() {
		operands = append(operands, inputShares[pid])
	}

	sample = s.timing.Sample("multiply")
	productShare, err := s.productTree(operands)
	sample.Finish()
	if err != nil {
		return field.Zero, s.abort(err)
	}

	s.state = StateReconstructing
	sample = s.timing.Sample("reconstruct")
	result, err := s.openAndReconstruct(productShare)
	sample.Finish()
	if err != nil {
		return field.Zero, s.abort(err)
	}

	s.state = StateDone
	return result, nil
}

// Timing returns the session's phase-timing report, populated once
// Run has completed.
func (s *Session) Timing() *Timing { return s.timing }

// sharing produces an n-party, degree-t sharing of secret using the
// session's randomness source.
func (s *Session) sharing(secret field.F) ([]share.Share, error) {
	return share.Sharing(secret, s.N(), s.t, s.rand)
}
