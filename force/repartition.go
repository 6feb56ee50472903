package force

import (
	"math"

	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// NodeStats is the force law evaluated at one node: its net force, the
// derivative of that force w.r.t. the node's own potential, and the
// relative error used by every convergence check in the solver.
type NodeStats struct {
	Force         float64
	Derivative    float64
	RelativeError float64
}

// ContactForce returns the signed force a contact transmits, given its
// directional conductivities and deltaP = otherPotential - localPotential.
func ContactForce(condPlus, condMinus, deltaP float64) float64 {
	if deltaP >= 0 {
		return condPlus * deltaP
	}
	return condMinus * deltaP
}

// ForceRepartition is a pure, stateless view of the force law (§3) over a
// compiled F1Structure and a potential vector. It allocates nothing: every
// query touches only the adjacency slice of the node(s) involved.
type ForceRepartition struct {
	f          *fgraph.F1Structure
	potentials []float64
}

// NewForceRepartition builds a ForceRepartition over f and potentials.
// potentials must have length f.NodeCount() and is aliased, not copied:
// callers that mutate it between queries will see the updated values.
func NewForceRepartition(f *fgraph.F1Structure, potentials []float64) *ForceRepartition {
	return &ForceRepartition{f: f, potentials: potentials}
}

// StatsOf evaluates the force law at nodeID using its current potential.
func (r *ForceRepartition) StatsOf(nodeID fgraph.NodeIndex) NodeStats {
	return r.StatsAt(nodeID, r.potentials[nodeID])
}

// StatsAt evaluates the force law at nodeID as if its potential were
// potential, without touching the stored potentials slice. Every
// neighbour's potential is read from the slice unchanged; this is what
// lets BasicStepRunner probe Newton/secant candidates for one node
// without committing them.
func (r *ForceRepartition) StatsAt(nodeID fgraph.NodeIndex, potential float64) NodeStats {
	var forceSum, absSum, derivative float64
	for _, c := range r.f.ContactsOf(nodeID) {
		deltaP := r.potentials[c.OtherNodeID] - potential
		cond := c.CondPlus
		if deltaP < 0 {
			cond = c.CondMinus
		}
		contactForce := cond * deltaP
		forceSum += contactForce
		absSum += math.Abs(contactForce)
		derivative -= cond
	}

	weight := r.f.NodeInfos()[nodeID].Weight
	netForce := weight + forceSum
	denom := weight + absSum

	var relErr float64
	if denom > 0 {
		relErr = math.Abs(netForce) / denom
	}

	return NodeStats{Force: netForce, Derivative: derivative, RelativeError: relErr}
}

// ForceOnContact returns the signed force along gravity on linkID's local
// side (isLocalSide=true) or other side (isLocalSide=false).
//
// Correctness contract: ForceOnContact(l, true) == -ForceOnContact(l, false)
// to within floating-point round-off, since the two sides see the same
// |deltaP| with swapped sign and swapped directional conductivities.
func (r *ForceRepartition) ForceOnContact(linkID fgraph.LinkIndex, isLocalSide bool) float64 {
	contact, ownerID := r.f.ContactOnSide(linkID, isLocalSide)
	deltaP := r.potentials[contact.OtherNodeID] - r.potentials[ownerID]
	return ContactForce(contact.CondPlus, contact.CondMinus, deltaP)
}

// ForceVectorOnContact returns ForceOnContact(linkID, isLocalSide) times
// the structure's normalized gravity direction.
func (r *ForceRepartition) ForceVectorOnContact(linkID fgraph.LinkIndex, isLocalSide bool) vecmath.Vec3 {
	scalar := r.ForceOnContact(linkID, isLocalSide)
	return r.f.NormalizedG().Vec3.Scale(scalar)
}

// RunNodeStep is the per-node Newton/secant root-finder of §4.3: it
// solves force_i(P) = 0 for node nodeID's potential, starting from its
// current value, accepting once |force| <= maxForceError.
//
// The returned CurrentNodeError is measured at entry (before the step),
// not after — so a full BasicStepRunner sweep reports the relative error
// of the potentials that were in effect during that sweep.
func (r *ForceRepartition) RunNodeStep(nodeID fgraph.NodeIndex, maxForceError float64) NodeStepResult {
	entry := r.StatsOf(nodeID)
	eval := func(p float64) (float64, float64) {
		s := r.StatsAt(nodeID, p)
		return s.Force, s.Derivative
	}
	nextPotential, _ := FindRoot(r.potentials[nodeID], eval, maxForceError)
	return NodeStepResult{CurrentNodeError: entry.RelativeError, NextPotential: nextPotential}
}

// NodeStepResult is the outcome of one RunNodeStep call.
type NodeStepResult struct {
	CurrentNodeError float64
	NextPotential    float64
}

// MaxRelativeError returns the largest RelativeError among every
// non-foundation node. It equals the CurrentMaxError a BasicStepRunner
// sweep over the same potentials reports; solver.Force1Solver checks that
// sweep result, not this method, against config.TargetMaxError.
func (r *ForceRepartition) MaxRelativeError() float64 {
	var maxErr float64
	for i, node := range r.f.Structure().Nodes() {
		if node.IsFoundation {
			continue
		}
		if relErr := r.StatsOf(fgraph.NodeIndex(i)).RelativeError; relErr > maxErr {
			maxErr = relErr
		}
	}
	return maxErr
}

// SumRelativeError returns the sum of RelativeError over every
// non-foundation node — a diagnostic alongside MaxRelativeError, not used
// by the solver's own termination test.
func (r *ForceRepartition) SumRelativeError() float64 {
	var sum float64
	for i, node := range r.f.Structure().Nodes() {
		if node.IsFoundation {
			continue
		}
		sum += r.StatsOf(fgraph.NodeIndex(i)).RelativeError
	}
	return sum
}
