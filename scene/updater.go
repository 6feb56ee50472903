package scene

import (
	"sort"

	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// allDirections lists the six face directions in a fixed order used to
// enumerate a block's neighbours.
var allDirections = [directionCount]Direction{PlusX, MinusX, PlusY, MinusY, PlusZ, MinusZ}

// positiveDirections maps axis 0/1/2 to its positive-direction constant,
// matching BlockData.linkIndices' per-axis, positive-direction slots.
var positiveDirections = [3]Direction{PlusX, PlusY, PlusZ}

// TransactionResult reports what a RunTransaction call changed
// (spec.md §4.8 step 5): the ids of structures created and the ids of
// (previously existing) structures removed. Both are sorted ascending.
type TransactionResult struct {
	NewStructures     []StructureID
	RemovedStructures []StructureID
}

// SceneUpdater applies Transactions to a SceneData, recomputing the
// structures touched by each batch of adds/removes. Grounded on
// gridgraph.GridGraph.ConnectedComponents' slice-as-queue BFS shape
// (gridgraph/components.go), generalized from "group every cell by
// equal value" to "group every block by its foundation-leaf-stopping
// connectivity rule" (spec.md §3), and on dfs.DFS's
// visited/enqueue-then-process walker shape (dfs/dfs.go) for the
// foundation-is-a-leaf stopping rule.
type SceneUpdater struct {
	scene *SceneData
}

// NewSceneUpdater returns a SceneUpdater operating on scene.
func NewSceneUpdater(scene *SceneData) *SceneUpdater {
	return &SceneUpdater{scene: scene}
}

// RunTransaction applies t atomically (spec.md §4.8):
//  1. Validate — reject the whole transaction on any inconsistency.
//  2. Compute the touched set — every removed block, plus every
//     already-present non-foundation neighbour of an added block (an
//     add can bridge into an existing structure through one of its
//     regular members, which then must be rebuilt through it rather
//     than left stale; a shared foundation leaf alone never merges
//     structures, so touching only one doesn't touch its owner).
//  3. Compute the dirty set — every live structure containing a
//     touched block. A structure is found by scanning every live
//     structure rather than trusting a single block's StructureID,
//     since a foundation block can be a leaf of more than one
//     structure at once (spec.md §3) and a touched foundation may not
//     report the structure that actually needs rebuilding.
//  4. Clear exactly the link slots owned by a dirty structure (a slot
//     whose positive-axis neighbour is also a member of that same
//     structure), delete doomed blocks, and delete every dirty
//     structure.
//  5. For each dirty block without a (surviving) structure id, seeded
//     in ascending BlockIndex order, run a connectivity exploration
//     that yields one new StructureData.
//  6. Report the ids created and removed.
func (u *SceneUpdater) RunTransaction(t *Transaction) (TransactionResult, error) {
	scene := u.scene
	if err := t.validate(scene); err != nil {
		return TransactionResult{}, err
	}

	touched := make(map[BlockIndex]bool, len(t.removes))
	for _, idx := range t.removes {
		touched[idx] = true
	}
	for _, info := range t.adds {
		for _, d := range allDirections {
			nIdx := info.Index.Neighbor(d)
			nBlk, ok := scene.blocks[nIdx]
			if !ok || nBlk.Info.IsFoundation {
				// A foundation neighbour is a leaf: it can be shared by
				// several structures (spec.md §3) without merging them,
				// so touching only it never requires rebuilding the
				// structure it already belongs to.
				continue
			}
			touched[nIdx] = true
		}
	}

	dirtyStructureIDs := make(map[StructureID]bool)
	dirtySD := make(map[StructureID]*StructureData)
	for sid, sd := range scene.structures {
		for idx := range touched {
			if sd.Contains(idx) {
				dirtyStructureIDs[sid] = true
				dirtySD[sid] = sd
				break
			}
		}
	}

	dirtyBlocks := make(map[BlockIndex]bool)
	for _, sd := range dirtySD {
		for _, idx := range sd.BlockIndices() {
			dirtyBlocks[idx] = true
			blk, ok := scene.blocks[idx]
			if !ok {
				continue
			}
			for axis, posDir := range positiveDirections {
				if _, has := blk.linkIndexAlong(axis); !has {
					continue
				}
				if sd.Contains(idx.Neighbor(posDir)) {
					blk.setLinkIndexAlong(axis, noLink)
				}
			}
		}
	}

	for _, idx := range t.removes {
		delete(dirtyBlocks, idx)
		delete(scene.blocks, idx)
	}

	removedStructures := make([]StructureID, 0, len(dirtyStructureIDs))
	for sid := range dirtyStructureIDs {
		delete(scene.structures, sid)
		removedStructures = append(removedStructures, sid)
	}
	sort.Slice(removedStructures, func(i, j int) bool { return removedStructures[i] < removedStructures[j] })

	for idx := range dirtyBlocks {
		blk, ok := scene.blocks[idx]
		if !ok {
			continue
		}
		stillOwned := false
		for _, sd := range scene.structures {
			if sd.Contains(idx) {
				stillOwned = true
				break
			}
		}
		if !stillOwned {
			blk.StructureID = InvalidStructureID
		}
	}
	for _, info := range t.adds {
		scene.blocks[info.Index] = newBlockData(info)
		dirtyBlocks[info.Index] = true
	}

	seeds := make([]BlockIndex, 0, len(dirtyBlocks))
	for idx := range dirtyBlocks {
		seeds = append(seeds, idx)
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Less(seeds[j]) })

	newStructures := make([]StructureID, 0)
	for _, idx := range seeds {
		blk := scene.blocks[idx]
		if blk.StructureID != InvalidStructureID {
			continue
		}
		if blk.Info.IsFoundation {
			continue
		}
		sid := scene.allocateStructureID()
		sd := newStructureData(sid)
		if err := u.explore(scene, sd, idx); err != nil {
			return TransactionResult{}, err
		}
		scene.structures[sid] = sd
		newStructures = append(newStructures, sid)
	}

	return TransactionResult{NewStructures: newStructures, RemovedStructures: removedStructures}, nil
}

// explore runs the connectivity exploration of spec.md §4.8 step 4 from
// seed, a non-foundation block, filling sd with every reached block and
// the solver links between them. Only non-foundation blocks are
// enqueued and dequeued; a foundation neighbour is included as a leaf
// (given a node, given a StructureData membership) but its own
// neighbours are never visited.
func (u *SceneUpdater) explore(scene *SceneData, sd *StructureData, seed BlockIndex) error {
	seedBlk := scene.blocks[seed]
	seedBlk.StructureID = sd.ID()
	if _, err := sd.addBlock(seed, seedBlk.Info.Mass, seedBlk.Info.IsFoundation); err != nil {
		return err
	}

	queue := []BlockIndex{seed}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		curBlk := scene.blocks[cur]

		for _, d := range allDirections {
			neighborIdx := cur.Neighbor(d)
			neighborBlk, ok := scene.blocks[neighborIdx]
			if !ok {
				continue
			}

			if neighborBlk.StructureID != sd.ID() {
				neighborBlk.StructureID = sd.ID()
				if _, err := sd.addBlock(neighborIdx, neighborBlk.Info.Mass, neighborBlk.Info.IsFoundation); err != nil {
					return err
				}
				if !neighborBlk.Info.IsFoundation {
					queue = append(queue, neighborIdx)
				}
			}

			if err := u.addContactOnce(scene, sd, cur, curBlk, neighborIdx, neighborBlk, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// addContactOnce adds the solver link for the physical contact between
// cur and neighbor (along direction d from cur), unless it was already
// added from the other side. The block whose neighbour lies along the
// positive axis (the lower-coordinate block of the pair) is always the
// link's local endpoint, so the contact is
// attempted exactly once regardless of which non-foundation endpoint's
// exploration discovers it first.
func (u *SceneUpdater) addContactOnce(scene *SceneData, sd *StructureData, cur BlockIndex, curBlk *BlockData, neighbor BlockIndex, neighborBlk *BlockData, d Direction) error {
	localIdx, otherIdx, localBlk, otherBlk, localDir := cur, neighbor, curBlk, neighborBlk, d
	if !d.IsPositive() {
		localIdx, otherIdx, localBlk, otherBlk, localDir = neighbor, cur, neighborBlk, curBlk, d.Opposite()
	}

	if _, already := localBlk.linkIndexAlong(localDir.Axis()); already {
		return nil
	}

	area, err := scene.ContactAreaAlong(localDir)
	if err != nil {
		return err
	}
	thickness, err := scene.ThicknessAlong(localDir)
	if err != nil {
		return err
	}
	limit := localBlk.Info.MaxPressureStress.Min(otherBlk.Info.MaxPressureStress)
	conductivity := limit.Scale(area / thickness)

	normal, err := vecmath.Normalize(axisVector(localDir))
	if err != nil {
		return err
	}

	linkID, err := sd.addContact(localIdx, otherIdx, normal, conductivity)
	if err != nil {
		return err
	}
	localBlk.setLinkIndexAlong(localDir.Axis(), linkID)
	return nil
}

// axisVector returns the unit displacement vector of direction d.
func axisVector(d Direction) vecmath.Vec3 {
	s := float64(d.Sign())
	switch d.Axis() {
	case 0:
		return vecmath.NewVec3(s, 0, 0)
	case 1:
		return vecmath.NewVec3(0, s, 0)
	default:
		return vecmath.NewVec3(0, 0, s)
	}
}
