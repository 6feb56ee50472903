package scene

import "github.com/vsaulue/Gustave-sub001/vecmath"

// BlockConstructionInfo is the user-supplied description of a block to
// add to a scene (spec.md §6): its lattice index, material pressure
// limits, mass, foundation flag, and an opaque user-data payload.
type BlockConstructionInfo struct {
	Index             BlockIndex
	MaxPressureStress vecmath.Stress[float64]
	Mass              float64
	IsFoundation      bool
	UserData          any
}

// validate checks the per-field invariants spec.md §7 assigns to block
// construction: mass and every maxPressureStress component strictly
// positive.
func (info BlockConstructionInfo) validate() error {
	if info.Mass <= 0 {
		return ErrNonPositiveMass
	}
	s := info.MaxPressureStress
	if s.Compression <= 0 || s.Shear <= 0 || s.Tensile <= 0 {
		return ErrNonPositiveStress
	}
	return nil
}

// InvalidStructureID is the sentinel held by a block with no assigned
// structure, and never a value SceneData.allocateStructureID hands out.
const InvalidStructureID StructureID = -1

// StructureID identifies a live StructureData within a SceneData.
// Monotonically increasing, never reused (spec.md §3).
type StructureID int64
