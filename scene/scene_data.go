package scene

import (
	"sort"

	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// SceneData is the persistent spatial index of blocks on an integer
// lattice (C9): an indexed set of blocks keyed by BlockIndex, an
// indexed set of live structures keyed by StructureID, and the
// geometric constants derived from blockSize. Adapted from
// gridgraph.GridGraph's "dense grid as a graph, precompute derived
// geometry at construction" shape, generalized from a dense 2-D array
// to a sparse 3-D map since blocks need not form a filled box.
type SceneData struct {
	blockSize       vecmath.Vec3
	blocks          map[BlockIndex]*BlockData
	structures      map[StructureID]*StructureData
	nextStructureID StructureID
}

// NewSceneData builds an empty scene with the given block size.
// Fails with ErrNonPositiveBlockSize if any component is <= 0.
func NewSceneData(blockSize vecmath.Vec3) (*SceneData, error) {
	if blockSize.X() <= 0 || blockSize.Y() <= 0 || blockSize.Z() <= 0 {
		return nil, ErrNonPositiveBlockSize
	}
	return &SceneData{
		blockSize:  blockSize,
		blocks:     make(map[BlockIndex]*BlockData),
		structures: make(map[StructureID]*StructureData),
	}, nil
}

// BlockSize returns the scene's fixed per-block dimensions.
func (s *SceneData) BlockSize() vecmath.Vec3 { return s.blockSize }

// ContactAreaAlong returns the contact area of a face along direction
// d: the product of the two blockSize components perpendicular to d's
// axis (spec.md §4.7).
func (s *SceneData) ContactAreaAlong(d Direction) (float64, error) {
	if !d.IsValid() {
		return 0, ErrInvalidDirection
	}
	switch d.Axis() {
	case 0:
		return s.blockSize.Y() * s.blockSize.Z(), nil
	case 1:
		return s.blockSize.X() * s.blockSize.Z(), nil
	default:
		return s.blockSize.X() * s.blockSize.Y(), nil
	}
}

// ThicknessAlong returns the blockSize component along d's axis.
func (s *SceneData) ThicknessAlong(d Direction) (float64, error) {
	if !d.IsValid() {
		return 0, ErrInvalidDirection
	}
	switch d.Axis() {
	case 0:
		return s.blockSize.X(), nil
	case 1:
		return s.blockSize.Y(), nil
	default:
		return s.blockSize.Z(), nil
	}
}

// BlockAt returns the block at idx, and whether one exists.
func (s *SceneData) BlockAt(idx BlockIndex) (*BlockData, bool) {
	b, ok := s.blocks[idx]
	return b, ok
}

// BlockCount returns the number of blocks currently in the scene.
func (s *SceneData) BlockCount() int { return len(s.blocks) }

// SortedBlockIndices returns every occupied BlockIndex in ascending
// lexicographic (x, y, z) order — the deterministic seed order
// SPEC_FULL.md §3 commits to for transaction processing and iteration.
func (s *SceneData) SortedBlockIndices() []BlockIndex {
	out := make([]BlockIndex, 0, len(s.blocks))
	for idx := range s.blocks {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// StructureAt returns the structure with id, and whether one exists.
func (s *SceneData) StructureAt(id StructureID) (*StructureData, bool) {
	st, ok := s.structures[id]
	return st, ok
}

// StructureCount returns the number of live structures.
func (s *SceneData) StructureCount() int { return len(s.structures) }

// SortedStructureIDs returns every live StructureID in ascending order.
func (s *SceneData) SortedStructureIDs() []StructureID {
	out := make([]StructureID, 0, len(s.structures))
	for id := range s.structures {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// allocateStructureID returns a fresh, never-reused StructureID.
func (s *SceneData) allocateStructureID() StructureID {
	id := s.nextStructureID
	s.nextStructureID++
	return id
}
