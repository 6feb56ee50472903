package solver

import (
	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/force"
	"github.com/vsaulue/Gustave-sub001/layer"
)

// Force1Solver runs the iterative layer/cluster/basic solve (C8) against
// its fixed Config.
type Force1Solver struct {
	config Config
}

// NewForce1Solver builds a Force1Solver from config, rejecting a
// non-positive TargetMaxError.
func NewForce1Solver(config Config) (*Force1Solver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Force1Solver{config: config}, nil
}

// Run solves structure under s's Config (§4.6):
//  1. Compile structure against config.G; build its depth decomposition.
//  2. If any non-foundation node has no path to a foundation, return a
//     non-solved Result immediately — the structure is unsupported.
//  3. Otherwise loop: layer step, every cluster step, basic step; return
//     solved as soon as the basic step's max relative error drops under
//     config.TargetMaxError.
//  4. Return non-solved once config.MaxIterations is exhausted.
func (s *Force1Solver) Run(structure *fgraph.Structure) (Result, error) {
	f, err := fgraph.Build(structure, s.config.G)
	if err != nil {
		return Result{}, err
	}

	dd := layer.BuildDepthDecomposition(f)
	if dd.ReachedCount < f.NodeCount() {
		return Result{}, nil
	}

	ctx := newRunContext(f, dd)
	layerRunner := layer.NewLayerStepRunner(ctx.ls, s.config.TargetMaxError)
	clusterRunner := layer.NewClusterStepRunner(s.config.TargetMaxError)
	basicRunner := force.NewBasicStepRunner(f, s.config.TargetMaxError)

	for iteration := uint64(0); iteration < s.config.MaxIterations; iteration++ {
		layerRunner.RunStep(ctx.potentials, ctx.offsets)
		// Clusters are independent corrections (no ascending-id chaining,
		// see DESIGN.md); applying the lowest-depth (foundation-adjacent)
		// ones first keeps a cluster's own low contacts stable for the rest of
		// this pass.
		for i := len(ctx.clusters) - 1; i >= 0; i-- {
			clusterRunner.RunStep(ctx.potentials, ctx.clusters[i])
		}
		stepResult := basicRunner.RunStep(ctx.potentials, ctx.next)
		ctx.potentials, ctx.next = ctx.next, ctx.potentials

		if stepResult.CurrentMaxError < s.config.TargetMaxError {
			return Result{iterations: iteration + 1, solution: newSolution(f, ctx.potentials)}, nil
		}
	}
	return Result{iterations: s.config.MaxIterations}, nil
}
