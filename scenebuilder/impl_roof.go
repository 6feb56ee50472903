package scenebuilder

import (
	"github.com/vsaulue/Gustave-sub001/scene"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// BuildUnsupportedRoofScene assembles spec.md §8 scenario 2: two 3-block
// all-foundation columns at x=0 and x=2 (y=0..2), and a single
// non-foundation roof block at (1,2,0) bridging them. Neither column
// contributes a structure on its own; the roof block's exploration is
// the only seed, and its two horizontal contacts are the sole path
// carrying its weight — support can only come from shear.
func BuildUnsupportedRoofScene(blockSize vecmath.Vec3, bopts ...BuilderOption) (*scene.SceneData, error) {
	return BuildScene(blockSize, bopts,
		FoundationColumn(3, scene.BlockIndex{X: 0}),
		FoundationColumn(3, scene.BlockIndex{X: 2}),
		SingleBlock(scene.BlockIndex{X: 1, Y: 2}, false),
	)
}
