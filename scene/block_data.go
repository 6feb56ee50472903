package scene

import "github.com/vsaulue/Gustave-sub001/fgraph"

// noLink is the sentinel held in BlockData.linkIndices for a direction
// with no solver link: either there is no neighbour there, the contact
// is invalid (both sides foundation), or the structure holding the
// contact has not been (re)built yet. SceneUpdater.addContactOnce sets
// the slot when it compiles the link.
const noLink fgraph.LinkIndex = -1

// BlockData is a scene's internal record for one occupied lattice cell:
// the user's construction info, the structure it currently belongs to
// (InvalidStructureID when none), and — for each positive direction —
// the solver LinkIndex of the contact going out of this block along
// that axis, when one exists (spec.md §4.7). A negative-direction
// contact is resolved by looking up the neighbour block's positive slot
// instead: the two directions of one physical contact share a single link.
type BlockData struct {
	Info        BlockConstructionInfo
	StructureID StructureID
	linkIndices [3]fgraph.LinkIndex
}

func newBlockData(info BlockConstructionInfo) *BlockData {
	return &BlockData{
		Info:        info,
		StructureID: InvalidStructureID,
		linkIndices: [3]fgraph.LinkIndex{noLink, noLink, noLink},
	}
}

// linkIndexAlong returns the solver LinkIndex of the block's outgoing
// link along its positive axis (axis 0/1/2 for x/y/z), and whether one
// is currently set.
func (b *BlockData) linkIndexAlong(axis int) (fgraph.LinkIndex, bool) {
	id := b.linkIndices[axis]
	return id, id != noLink
}

func (b *BlockData) setLinkIndexAlong(axis int, id fgraph.LinkIndex) {
	b.linkIndices[axis] = id
}
