package scenebuilder

import (
	"fmt"

	"github.com/vsaulue/Gustave-sub001/scene"
)

// Column stacks n blocks along +y starting at origin; the bottom block
// is a foundation, the rest are not (spec.md §8 scenarios 1 and 5: the
// three-block column and the convergence-cap tower are both this shape).
func Column(n int, origin scene.BlockIndex) Constructor {
	return column(n, origin, false)
}

// FoundationColumn stacks n all-foundation blocks along +y starting at
// origin. Foundation-foundation contacts are never valid (spec.md §3),
// so this column contributes no structure of its own — it composes with
// a bridging non-foundation block into fixtures like
// BuildUnsupportedRoofScene.
func FoundationColumn(n int, origin scene.BlockIndex) Constructor {
	return column(n, origin, true)
}

func column(n int, origin scene.BlockIndex, allFoundation bool) Constructor {
	method := MethodColumn
	if allFoundation {
		method = MethodFoundationColumn
	}
	return func(tx *scene.Transaction, cfg builderConfig) error {
		if n < MinBlockCount {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", method, n, MinBlockCount, ErrTooFewBlocks)
		}
		for i := 0; i < n; i++ {
			idx := origin.Add(scene.BlockIndex{Y: i})
			tx.AddBlock(scene.BlockConstructionInfo{
				Index:             idx,
				MaxPressureStress: cfg.maxPressureStress,
				Mass:              cfg.mass,
				IsFoundation:      allFoundation || i == 0,
			})
		}
		return nil
	}
}
