package scenebuilder

import "errors"

// ErrTooFewBlocks indicates a shape parameter (block count, width,
// height, depth) is smaller than the allowed minimum.
var ErrTooFewBlocks = errors.New("scenebuilder: block count must be >= 1")

// ErrNilConstructor indicates BuildScene received a nil Constructor.
var ErrNilConstructor = errors.New("scenebuilder: nil constructor")
