package solver

import (
	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/layer"
)

// runContext owns the mutable state of a single Force1Solver.Run call
// (§4.6): the compiled structure, its layer/cluster decompositions, the
// current/next potential buffers (initialised to 0), and the layer-offset
// scratch buffer.
type runContext struct {
	f          *fgraph.F1Structure
	ls         *layer.LayerStructure
	clusters   []layer.Cluster
	potentials []float64
	next       []float64
	offsets    []float64
}

// newRunContext builds a runContext over f, reusing an already-computed
// DepthDecomposition for both the layer and cluster decompositions.
func newRunContext(f *fgraph.F1Structure, dd *layer.DepthDecomposition) *runContext {
	ls := layer.BuildLayerStructure(f, dd)
	n := f.NodeCount()
	return &runContext{
		f:          f,
		ls:         ls,
		clusters:   layer.BuildClusters(f, dd),
		potentials: make([]float64, n),
		next:       make([]float64, n),
		offsets:    make([]float64, len(ls.Layers())),
	}
}
