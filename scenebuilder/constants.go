package scenebuilder

// Method name constants, used to prefix errors with the constructor name.
const (
	MethodColumn           = "Column"
	MethodFoundationColumn = "FoundationColumn"
	MethodWall             = "Wall"
	MethodSlab             = "Slab"
)

// MinBlockCount is the smallest meaningful size for any block-count or
// grid-dimension parameter accepted by a scenebuilder Constructor.
const MinBlockCount = 1

// DefaultMass is the per-block mass a fixture gets absent WithMass.
const DefaultMass = 14400.0

// DefaultPressureComponent is every component of the maxPressureStress a
// fixture gets absent WithMaxPressureStress: stiff enough that a default-
// scale fixture never saturates unless the caller asks it to (via
// WithMaxPressureStress, e.g. spec.md §8 scenario 6).
const DefaultPressureComponent = 20e6
