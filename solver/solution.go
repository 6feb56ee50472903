package solver

import (
	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/force"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// Result is Force1Solver.Run's outcome: the number of iterations actually
// run, and — only when the run converged — the resulting Solution.
type Result struct {
	iterations uint64
	solution   *Solution
}

// IsSolved reports whether the run converged.
func (r Result) IsSolved() bool { return r.solution != nil }

// Iterations is the number of iterations actually run.
func (r Result) Iterations() uint64 { return r.iterations }

// Solution returns the converged Solution and true, or (nil, false) when
// the run did not converge.
func (r Result) Solution() (*Solution, bool) { return r.solution, r.solution != nil }

// Solution owns a converged run's final potentials and the F1Structure
// they were solved over; every query lazily builds a
// force.ForceRepartition rather than caching one.
type Solution struct {
	f          *fgraph.F1Structure
	potentials []float64
}

// newSolution copies potentials so later mutation of the solver's own
// buffers (ctx.potentials gets reused as ctx.next on a resolve) never
// reaches a previously returned Solution.
func newSolution(f *fgraph.F1Structure, potentials []float64) *Solution {
	return &Solution{f: f, potentials: append([]float64(nil), potentials...)}
}

func (s *Solution) repartition() *force.ForceRepartition {
	return force.NewForceRepartition(s.f, s.potentials)
}

// F1Structure returns the compiled structure this solution was solved over.
func (s *Solution) F1Structure() *fgraph.F1Structure { return s.f }

// WeightOf returns nodeID's weight under the solved gravity.
func (s *Solution) WeightOf(nodeID fgraph.NodeIndex) float64 {
	return s.f.NodeInfos()[nodeID].Weight
}

// PotentialOf returns nodeID's solved potential.
func (s *Solution) PotentialOf(nodeID fgraph.NodeIndex) float64 {
	return s.potentials[nodeID]
}

// NetForceOf returns nodeID's net force at the solved potentials; for a
// converged Solution this is within the run's error tolerance of 0.
func (s *Solution) NetForceOf(nodeID fgraph.NodeIndex) float64 {
	return s.repartition().StatsOf(nodeID).Force
}

// RelativeErrorOf returns nodeID's relative error at the solved potentials.
func (s *Solution) RelativeErrorOf(nodeID fgraph.NodeIndex) float64 {
	return s.repartition().StatsOf(nodeID).RelativeError
}

// MaxRelativeError returns the largest RelativeErrorOf over every
// non-foundation node.
func (s *Solution) MaxRelativeError() float64 {
	return s.repartition().MaxRelativeError()
}

// SumRelativeError returns the sum of RelativeErrorOf over every
// non-foundation node — a diagnostic, not used by the solver's own
// termination test.
func (s *Solution) SumRelativeError() float64 {
	return s.repartition().SumRelativeError()
}

// ForceOnContact returns the signed force along gravity on linkID's local
// side (isLocalSide=true) or other side (isLocalSide=false).
func (s *Solution) ForceOnContact(linkID fgraph.LinkIndex, isLocalSide bool) float64 {
	return s.repartition().ForceOnContact(linkID, isLocalSide)
}

// ForceVectorOnContact returns ForceOnContact(linkID, isLocalSide) times
// the solved gravity's unit direction.
func (s *Solution) ForceVectorOnContact(linkID fgraph.LinkIndex, isLocalSide bool) vecmath.Vec3 {
	return s.repartition().ForceVectorOnContact(linkID, isLocalSide)
}
