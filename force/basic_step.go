package force

import "github.com/vsaulue/Gustave-sub001/fgraph"

// basicErrorBudget is the fraction of targetMaxError each node is allowed
// to use as its own root-finder tolerance (§4.3): keeping every node
// strictly under budget keeps the swept-sweep's aggregate error under the
// global target too.
const basicErrorBudget = 0.75

// StepResult is the outcome of one full sweep: the worst per-node
// relative error observed (measured at each node's entry potential, per
// RunNodeStep), used by Force1Solver as the convergence signal.
type StepResult struct {
	CurrentMaxError float64
}

// BasicStepRunner is the per-node Newton/secant pass (C4): it sweeps
// every non-foundation node in index order, nulling its net force within
// a weight-scaled error budget.
type BasicStepRunner struct {
	f              *fgraph.F1Structure
	targetMaxError float64
}

// NewBasicStepRunner builds a BasicStepRunner over f, targeting
// targetMaxError as the global relative-error tolerance.
func NewBasicStepRunner(f *fgraph.F1Structure, targetMaxError float64) *BasicStepRunner {
	return &BasicStepRunner{f: f, targetMaxError: targetMaxError}
}

// RunStep sweeps every node, reading from potentials and writing each
// node's new potential into next. Foundation nodes are copied through
// unchanged. potentials and next must both have length f.NodeCount() and
// must not alias each other; the caller swaps them once RunStep returns.
func (r *BasicStepRunner) RunStep(potentials, next []float64) StepResult {
	rep := NewForceRepartition(r.f, potentials)
	nodeInfos := r.f.NodeInfos()

	var maxErr float64
	for i, node := range r.f.Structure().Nodes() {
		if node.IsFoundation {
			next[i] = potentials[i]
			continue
		}
		id := fgraph.NodeIndex(i)
		maxForceError := basicErrorBudget * r.targetMaxError * nodeInfos[i].Weight
		result := rep.RunNodeStep(id, maxForceError)
		next[i] = result.NextPotential
		if result.CurrentNodeError > maxErr {
			maxErr = result.CurrentNodeError
		}
	}
	return StepResult{CurrentMaxError: maxErr}
}
