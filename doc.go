// Package gustave is the root of a structural-integrity solver for
// voxel-block constructions: given a scene of cubic blocks under gravity,
// it tells you whether the construction stands, and with how much margin
// on every contact.
//
// The module is organized as a bottom-up stack of subpackages, each
// leaning only on the ones below it:
//
//	vecmath/      3-vectors and compression/shear/tensile stress triples
//	fgraph/       the solver's graph model and its per-gravity compilation
//	force/        the pure force law and the shared 1-D root-finder
//	layer/        depth/layer/cluster precomputation that speeds convergence
//	solver/       Force1Solver: the iterative layer→cluster→basic solve loop
//	scene/        the block/contact/structure data store and its transactions
//	scenebuilder/ synthetic scene fixtures for tests and examples
//
// A typical caller builds a scene, applies one or more transactions to
// add and remove blocks, compiles the resulting structures, and runs
// Force1Solver over each one to get a Solution it can query for
// per-contact forces and stress ratios.
package gustave
