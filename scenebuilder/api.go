package scenebuilder

import (
	"fmt"

	"github.com/vsaulue/Gustave-sub001/scene"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// Constructor applies one fixture's blocks to tx using the resolved
// builderConfig. Constructors validate their own parameters and return
// sentinel errors; they never panic.
type Constructor func(tx *scene.Transaction, cfg builderConfig) error

// BuildScene creates an empty SceneData of the given blockSize, resolves
// bopts into a builderConfig, and applies every constructor to a single
// Transaction before running it — a composite fixture (e.g. two columns
// plus a bridging roof block) becomes exactly one RunTransaction call,
// exercising the same atomicity guarantee any caller-built transaction gets.
func BuildScene(blockSize vecmath.Vec3, bopts []BuilderOption, cons ...Constructor) (*scene.SceneData, error) {
	sd, err := scene.NewSceneData(blockSize)
	if err != nil {
		return nil, fmt.Errorf("BuildScene: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	tx := scene.NewTransaction()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildScene: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(tx, *cfg); err != nil {
			return nil, fmt.Errorf("BuildScene: %w", err)
		}
	}

	updater := scene.NewSceneUpdater(sd)
	if _, err := updater.RunTransaction(tx); err != nil {
		return nil, fmt.Errorf("BuildScene: %w", err)
	}
	return sd, nil
}
