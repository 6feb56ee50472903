package scene

import (
	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/solver"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// Block returns a read-only handle on the block at idx. The handle is
// valid for as long as the underlying block exists; call IsValid
// before trusting its accessors (spec.md §4.9).
func (s *SceneData) Block(idx BlockIndex) BlockReference {
	return BlockReference{scene: s, index: idx}
}

// Structure returns a read-only handle on the structure with id.
func (s *SceneData) Structure(id StructureID) StructureReference {
	return StructureReference{scene: s, id: id}
}

// BlockReference is a typed, read-only handle on one lattice cell
// (spec.md §4.9). Every accessor re-reads the underlying SceneData, so
// a BlockReference taken before a transaction automatically reflects
// that transaction's effect on the same index afterwards — callers
// that need a point-in-time view should not hold one across a RunTransaction call.
type BlockReference struct {
	scene *SceneData
	index BlockIndex
}

func (r BlockReference) data() (*BlockData, bool) {
	if r.scene == nil {
		return nil, false
	}
	return r.scene.BlockAt(r.index)
}

// IsValid reports whether the referenced block still exists.
func (r BlockReference) IsValid() bool {
	_, ok := r.data()
	return ok
}

// Index returns the block's lattice index.
func (r BlockReference) Index() BlockIndex { return r.index }

// Mass returns the block's mass, or 0 if invalid.
func (r BlockReference) Mass() float64 {
	if d, ok := r.data(); ok {
		return d.Info.Mass
	}
	return 0
}

// IsFoundation reports whether the block is a foundation, or false if invalid.
func (r BlockReference) IsFoundation() bool {
	if d, ok := r.data(); ok {
		return d.Info.IsFoundation
	}
	return false
}

// UserData returns the block's user-data payload, or nil if invalid.
func (r BlockReference) UserData() any {
	if d, ok := r.data(); ok {
		return d.Info.UserData
	}
	return nil
}

// Structure returns a handle on the block's owning structure. Invalid
// when the block itself is invalid or unassigned (a foundation with no
// live structure referencing it). A foundation block can be a leaf of
// several structures at once (spec.md §3); this accessor only reports
// whichever one last claimed it — enumerate StructureReference.Blocks
// on each live structure to see full foundation membership.
func (r BlockReference) Structure() StructureReference {
	d, ok := r.data()
	if !ok || d.StructureID == InvalidStructureID {
		return StructureReference{}
	}
	return r.scene.Structure(d.StructureID)
}

// ContactAlong returns the handle on this block's contact along d.
func (r BlockReference) ContactAlong(d Direction) ContactReference {
	return ContactReference{scene: r.scene, local: r.index, dir: d}
}

// Contacts returns every valid ContactReference around the block, one
// per face with an existing neighbour and at least one non-foundation
// endpoint — mirroring the original blockReference::Contacts
// enumerator, which skips directions that resolve to an invalid contact.
func (r BlockReference) Contacts() []ContactReference {
	out := make([]ContactReference, 0, directionCount)
	for _, d := range allDirections {
		c := r.ContactAlong(d)
		if c.IsValid() {
			out = append(out, c)
		}
	}
	return out
}

// ContactReference is a typed, read-only handle on one face-to-face
// interface between local (at the reference's block index) and its
// neighbour along dir (spec.md §4.9).
type ContactReference struct {
	scene *SceneData
	local BlockIndex
	dir   Direction
}

func (c ContactReference) localData() (*BlockData, bool) {
	if c.scene == nil {
		return nil, false
	}
	return c.scene.BlockAt(c.local)
}

func (c ContactReference) otherIndex() BlockIndex { return c.local.Neighbor(c.dir) }

func (c ContactReference) otherData() (*BlockData, bool) {
	if c.scene == nil {
		return nil, false
	}
	return c.scene.BlockAt(c.otherIndex())
}

// IsValid reports whether both endpoints exist and at least one is non-foundation.
func (c ContactReference) IsValid() bool {
	ld, ok := c.localData()
	if !ok {
		return false
	}
	od, ok := c.otherData()
	if !ok {
		return false
	}
	return !ld.Info.IsFoundation || !od.Info.IsFoundation
}

// LocalBlock returns the handle on the contact's local-side block.
func (c ContactReference) LocalBlock() BlockReference { return c.scene.Block(c.local) }

// OtherBlock returns the handle on the contact's neighbour.
func (c ContactReference) OtherBlock() BlockReference { return c.scene.Block(c.otherIndex()) }

// Opposite returns the same physical contact viewed from the other side.
func (c ContactReference) Opposite() ContactReference {
	return ContactReference{scene: c.scene, local: c.otherIndex(), dir: c.dir.Opposite()}
}

// Normal returns the unit vector pointing from the local block to the
// other block.
func (c ContactReference) Normal() (vecmath.UnitVec3, error) {
	return vecmath.Normalize(axisVector(c.dir))
}

// Area returns the contact's face area.
func (c ContactReference) Area() (float64, error) {
	return c.scene.ContactAreaAlong(c.dir)
}

// MaxPressureStress returns the component-wise minimum of the two
// endpoints' material pressure limits — the same limit the transaction
// engine composes into the link's conductivity (spec.md §4.8).
func (c ContactReference) MaxPressureStress() (vecmath.Stress[float64], error) {
	ld, ok := c.localData()
	if !ok {
		return vecmath.Stress[float64]{}, ErrBlockNotFound
	}
	od, ok := c.otherData()
	if !ok {
		return vecmath.Stress[float64]{}, ErrBlockNotFound
	}
	return ld.Info.MaxPressureStress.Min(od.Info.MaxPressureStress), nil
}

// Structure returns the handle on the structure this contact belongs to.
func (c ContactReference) Structure() StructureReference {
	ld, ok := c.localData()
	if !ok || ld.StructureID == InvalidStructureID {
		return StructureReference{}
	}
	return c.scene.Structure(ld.StructureID)
}

// linkAndSide resolves the contact to its solver link and which side
// (local=true, other=false) this ContactReference's local block sits
// on; false when no link exists (invalid contact, or one endpoint not
// currently part of a solved structure).
func (c ContactReference) linkAndSide() (fgraph.LinkIndex, bool, bool) {
	if c.dir.IsPositive() {
		ld, ok := c.localData()
		if !ok {
			return 0, false, false
		}
		id, ok := ld.linkIndexAlong(c.dir.Axis())
		return id, true, ok
	}
	od, ok := c.otherData()
	if !ok {
		return 0, false, false
	}
	id, ok := od.linkIndexAlong(c.dir.Opposite().Axis())
	return id, false, ok
}

// ForceOnContact returns the signed force along gravity on this
// contact's local side, per sol (spec.md §4.9, §4.2).
func (c ContactReference) ForceOnContact(sol *solver.Solution) (float64, error) {
	link, isLocal, ok := c.linkAndSide()
	if !ok {
		return 0, ErrBlockNotFound
	}
	return sol.ForceOnContact(link, isLocal), nil
}

// ForceVector returns ForceOnContact's scalar times the solution's
// normalized gravity direction.
func (c ContactReference) ForceVector(sol *solver.Solution) (vecmath.Vec3, error) {
	link, isLocal, ok := c.linkAndSide()
	if !ok {
		return vecmath.Vec3{}, ErrBlockNotFound
	}
	return sol.ForceVectorOnContact(link, isLocal), nil
}

// ForceStress projects ForceVector onto the contact's normal to recover
// the signed compression/tensile split, with the remaining tangential
// magnitude reported as shear (spec.md §4.9).
func (c ContactReference) ForceStress(sol *solver.Solution) (vecmath.Stress[float64], error) {
	fv, err := c.ForceVector(sol)
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	normal, err := c.Normal()
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	n := fv.Dot(normal.Vec3)
	tangential := fv.Sub(normal.Vec3.Scale(n))

	var compression, tensile float64
	if n < 0 {
		compression = -n
	} else {
		tensile = n
	}
	return vecmath.Stress[float64]{Compression: compression, Shear: tangential.Norm(), Tensile: tensile}, nil
}

// PressureStress returns ForceStress divided by Area.
func (c ContactReference) PressureStress(sol *solver.Solution) (vecmath.Stress[float64], error) {
	fs, err := c.ForceStress(sol)
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	area, err := c.Area()
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	return fs.ScaleDiv(area), nil
}

// StressRatio returns ForceStress divided by (MaxPressureStress * Area)
// — the fraction of each component's load limit currently in use.
func (c ContactReference) StressRatio(sol *solver.Solution) (vecmath.Stress[float64], error) {
	fs, err := c.ForceStress(sol)
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	limit, err := c.MaxPressureStress()
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	area, err := c.Area()
	if err != nil {
		return vecmath.Stress[float64]{}, err
	}
	return fs.Div(limit.Scale(area)), nil
}

// StructureReference is a typed, read-only handle on one live
// StructureData (spec.md §4.9).
type StructureReference struct {
	scene *SceneData
	id    StructureID
}

func (r StructureReference) data() (*StructureData, bool) {
	if r.scene == nil {
		return nil, false
	}
	return r.scene.StructureAt(r.id)
}

// IsValid reports whether the referenced structure still exists.
func (r StructureReference) IsValid() bool {
	_, ok := r.data()
	return ok
}

// ID returns the structure's identifier.
func (r StructureReference) ID() StructureID { return r.id }

// Blocks returns every member block, in ascending lexicographic order.
func (r StructureReference) Blocks() []BlockReference {
	sd, ok := r.data()
	if !ok {
		return nil
	}
	indices := sd.BlockIndices()
	out := make([]BlockReference, len(indices))
	for i, idx := range indices {
		out[i] = r.scene.Block(idx)
	}
	return out
}

// Contains reports whether idx belongs to this structure.
func (r StructureReference) Contains(idx BlockIndex) bool {
	sd, ok := r.data()
	return ok && sd.Contains(idx)
}

// Structure returns the compiled solver graph, ready for
// solver.Force1Solver.Run; the second result is false when the
// reference is invalid.
func (r StructureReference) Structure() (*fgraph.Structure, bool) {
	sd, ok := r.data()
	if !ok {
		return nil, false
	}
	return sd.Structure(), true
}
