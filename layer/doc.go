// Package layer builds the solver's multi-level acceleration structures
// over a compiled fgraph.F1Structure — depth decomposition (C5), the
// layer decomposition used by the per-layer global-offset pass
// (LayerStepRunner, C6), and the cluster decomposition used by the
// per-cluster preconditioning pass (ClusterStepRunner, C7).
//
// The depth BFS is grounded on the multi-source frontier walk in
// github.com/katalvlaran/lvlath/bfs; the layer splice algorithm mirrors
// the original C++ LayerDecomposition exactly (same three-way
// same/low/high-depth contact classification, same stack-based flood
// fill), translated into Go slices instead of std::stack/std::vector.
package layer
