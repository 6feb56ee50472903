// Package force evaluates the force law over a compiled fgraph.F1Structure
// (ForceRepartition, C3) and runs the per-node Newton/secant pass that
// nulls it out one potential at a time (BasicStepRunner, C4).
//
// The 1-D root-finder in root_finder.go is shared: layer and cluster
// passes (higher up, in package layer) reuse FindRoot against their own
// scalar evaluators instead of re-implementing the Newton/secant hybrid.
package force
