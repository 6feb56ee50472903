// Package solver orchestrates the layer, cluster and basic passes over a
// compiled fgraph.F1Structure into a single iterative solve (Force1Solver,
// C8): it owns the run context (current/next potential buffers, the
// iteration counter) and the converged/capped Result.
//
// The main loop mirrors github.com/katalvlaran/lvlath/flow.Dinic's
// normalize-then-loop-until-no-progress shape: a config is validated once
// up front, then the solver repeats {layer step, cluster steps, basic
// step} until the convergence test passes or the iteration cap is hit.
package solver
