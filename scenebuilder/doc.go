// Package scenebuilder assembles synthetic CuboidGridScene fixtures —
// columns, walls, slabs, single blocks, composite roofs — for tests and
// examples, the way lvlath/builder assembles synthetic core.Graph
// topologies: one orchestrator (BuildScene), functional options resolved
// into an immutable config, and per-shape Constructor closures applied
// in order to a single Transaction.
package scenebuilder
