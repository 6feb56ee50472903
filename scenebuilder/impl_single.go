package scenebuilder

import "github.com/vsaulue/Gustave-sub001/scene"

// SingleBlock adds one block at idx with the given foundation flag.
func SingleBlock(idx scene.BlockIndex, isFoundation bool) Constructor {
	return func(tx *scene.Transaction, cfg builderConfig) error {
		tx.AddBlock(scene.BlockConstructionInfo{
			Index:             idx,
			MaxPressureStress: cfg.maxPressureStress,
			Mass:              cfg.mass,
			IsFoundation:      isFoundation,
		})
		return nil
	}
}

// FloatingBlock adds one non-foundation block at idx with no neighbours
// — spec.md §8 scenario 3 ("floating cube"): the solver must report it
// non-solved (reached count < node count).
func FloatingBlock(idx scene.BlockIndex) Constructor {
	return SingleBlock(idx, false)
}

// Pair adds two vertically adjacent blocks at origin and
// origin+(0,1,0). When foundationOnTop is false the lower block is the
// foundation (a standing pair, its contact under compression); when
// true the upper block is the foundation instead (a hanging pair, its
// contact under tension) — spec.md §8 scenario 6 swaps exactly this to
// drive a contact toward its tensile limit.
func Pair(origin scene.BlockIndex, foundationOnTop bool) Constructor {
	return func(tx *scene.Transaction, cfg builderConfig) error {
		upper := origin.Add(scene.BlockIndex{Y: 1})
		tx.AddBlock(scene.BlockConstructionInfo{
			Index:             origin,
			MaxPressureStress: cfg.maxPressureStress,
			Mass:              cfg.mass,
			IsFoundation:      !foundationOnTop,
		})
		tx.AddBlock(scene.BlockConstructionInfo{
			Index:             upper,
			MaxPressureStress: cfg.maxPressureStress,
			Mass:              cfg.mass,
			IsFoundation:      foundationOnTop,
		})
		return nil
	}
}
