package scenebuilder

import (
	"fmt"

	"github.com/vsaulue/Gustave-sub001/scene"
)

// Wall fills a width×height sheet of blocks in the x-y plane at
// z = origin.Z, row-major from origin: the bottom row (y = origin.Y) is
// foundation, every row above is not.
func Wall(width, height int, origin scene.BlockIndex) Constructor {
	return func(tx *scene.Transaction, cfg builderConfig) error {
		if width < MinBlockCount || height < MinBlockCount {
			return fmt.Errorf("%s: width=%d, height=%d (each must be >= %d): %w",
				MethodWall, width, height, MinBlockCount, ErrTooFewBlocks)
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				idx := origin.Add(scene.BlockIndex{X: x, Y: y})
				tx.AddBlock(scene.BlockConstructionInfo{
					Index:             idx,
					MaxPressureStress: cfg.maxPressureStress,
					Mass:              cfg.mass,
					IsFoundation:      y == 0,
				})
			}
		}
		return nil
	}
}

// Slab fills a width×depth sheet of all-foundation blocks in the x-z
// plane at y = origin.Y — a floor or footing for fixtures that need a
// wide, non-load-bearing base (foundation-foundation contacts are never
// part of any structure, spec.md §3).
func Slab(width, depth int, origin scene.BlockIndex) Constructor {
	return func(tx *scene.Transaction, cfg builderConfig) error {
		if width < MinBlockCount || depth < MinBlockCount {
			return fmt.Errorf("%s: width=%d, depth=%d (each must be >= %d): %w",
				MethodSlab, width, depth, MinBlockCount, ErrTooFewBlocks)
		}
		for z := 0; z < depth; z++ {
			for x := 0; x < width; x++ {
				idx := origin.Add(scene.BlockIndex{X: x, Z: z})
				tx.AddBlock(scene.BlockConstructionInfo{
					Index:             idx,
					MaxPressureStress: cfg.maxPressureStress,
					Mass:              cfg.mass,
					IsFoundation:      true,
				})
			}
		}
		return nil
	}
}
