package scene

import (
	"sort"

	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// StructureData is one maximal connected component of blocks (C11): the
// mapping from a block's lattice index to its node index within the
// compiled solver Structure it owns. Grounded on the original C++
// StructureData (components/core/.../scenes/cuboidGrid/detail/StructureData.hpp):
// addBlock is idempotent on an already-included block, addContact
// appends a link between two already-added blocks, and solverIndexOf
// exposes the block→node lookup a caller needs to read a Solution back
// into scene terms.
type StructureData struct {
	id        StructureID
	structure *fgraph.Structure
	nodeOf    map[BlockIndex]fgraph.NodeIndex
}

func newStructureData(id StructureID) *StructureData {
	return &StructureData{
		id:        id,
		structure: fgraph.NewStructure(),
		nodeOf:    make(map[BlockIndex]fgraph.NodeIndex),
	}
}

// ID returns the structure's identifier.
func (sd *StructureData) ID() StructureID { return sd.id }

// Structure returns the compiled solver graph, ready for solver.Force1Solver.Run.
func (sd *StructureData) Structure() *fgraph.Structure { return sd.structure }

// Contains reports whether idx belongs to this structure.
func (sd *StructureData) Contains(idx BlockIndex) bool {
	_, ok := sd.nodeOf[idx]
	return ok
}

// NodeIndexOf returns the solver NodeIndex assigned to idx within this
// structure, and whether idx belongs to it.
func (sd *StructureData) NodeIndexOf(idx BlockIndex) (fgraph.NodeIndex, bool) {
	n, ok := sd.nodeOf[idx]
	return n, ok
}

// BlockIndices returns every member block index in ascending lexicographic order.
func (sd *StructureData) BlockIndices() []BlockIndex {
	out := make([]BlockIndex, 0, len(sd.nodeOf))
	for idx := range sd.nodeOf {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// addBlock includes idx in the structure if it isn't already a member,
// appending a solver node with the given mass/foundation flag. Returns
// the block's NodeIndex either way.
func (sd *StructureData) addBlock(idx BlockIndex, mass float64, isFoundation bool) (fgraph.NodeIndex, error) {
	if n, ok := sd.nodeOf[idx]; ok {
		return n, nil
	}
	n, err := sd.structure.AddNode(mass, isFoundation)
	if err != nil {
		return 0, err
	}
	sd.nodeOf[idx] = n
	return n, nil
}

// addContact appends a solver link from localIdx to otherIdx (both
// already members), with the given outward normal and conductivity.
func (sd *StructureData) addContact(localIdx, otherIdx BlockIndex, normal vecmath.UnitVec3, conductivity vecmath.Stress[float64]) (fgraph.LinkIndex, error) {
	localNode, ok := sd.nodeOf[localIdx]
	if !ok {
		return 0, ErrBlockNotFound
	}
	otherNode, ok := sd.nodeOf[otherIdx]
	if !ok {
		return 0, ErrBlockNotFound
	}
	return sd.structure.AddLink(localNode, otherNode, normal, conductivity)
}
