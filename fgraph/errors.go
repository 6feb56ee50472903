// Package fgraph is the solver's graph model: a Structure of Node/Link
// (C1, the raw weighted graph fed to the solver) and its compiled
// F1Structure (C2, per-link directional conductivities plus a CSR
// adjacency of contacts).
//
// A Structure is append-only: AddNode/AddLink grow it, nothing ever
// shrinks it, and node/link indices are stable for its whole life, the
// way github.com/katalvlaran/lvlath/core.Graph keeps ids stable — except
// Structure uses dense int indices instead of string ids, since the
// scene package hands it nodes/links it has already deduplicated.
package fgraph

import "errors"

// Sentinel errors for Structure/F1Structure construction.
var (
	// ErrNodeNotFound indicates a link endpoint index is out of range.
	ErrNodeNotFound = errors.New("fgraph: node index out of range")

	// ErrSelfLink indicates an attempt to link a node to itself.
	ErrSelfLink = errors.New("fgraph: link endpoints must differ")

	// ErrZeroGravity indicates F1Structure was built with a zero gravity vector.
	ErrZeroGravity = errors.New("fgraph: gravity vector must be non-zero")

	// ErrNonPositiveMass indicates a node was added with mass <= 0.
	ErrNonPositiveMass = errors.New("fgraph: node mass must be strictly positive")
)
