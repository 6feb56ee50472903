package scene

import "errors"

// Sentinel errors for scene construction and transaction application.
var (
	// ErrNonPositiveBlockSize indicates a SceneData was built with a
	// block size component <= 0.
	ErrNonPositiveBlockSize = errors.New("scene: blockSize components must be strictly positive")

	// ErrNonPositiveMass indicates a BlockConstructionInfo has mass <= 0.
	ErrNonPositiveMass = errors.New("scene: block mass must be strictly positive")

	// ErrNonPositiveStress indicates a BlockConstructionInfo's
	// maxPressureStress has a component <= 0.
	ErrNonPositiveStress = errors.New("scene: maxPressureStress components must be strictly positive")

	// ErrInvalidDirection indicates a Direction value outside the six
	// valid axis directions.
	ErrInvalidDirection = errors.New("scene: direction must be one of the six axis directions")

	// ErrDuplicateAdd indicates a Transaction adds the same BlockIndex twice.
	ErrDuplicateAdd = errors.New("scene: transaction adds the same block index twice")

	// ErrDuplicateRemove indicates a Transaction removes the same BlockIndex twice.
	ErrDuplicateRemove = errors.New("scene: transaction removes the same block index twice")

	// ErrAddRemoveConflict indicates a Transaction both adds and removes
	// the same BlockIndex.
	ErrAddRemoveConflict = errors.New("scene: transaction both adds and removes the same block index")

	// ErrBlockNotFound indicates a Transaction removes a BlockIndex not
	// present in the scene, or a query targets an absent block.
	ErrBlockNotFound = errors.New("scene: block index not found in scene")

	// ErrBlockExists indicates a Transaction adds a BlockIndex already
	// present in the scene.
	ErrBlockExists = errors.New("scene: block index already exists in scene")
)
