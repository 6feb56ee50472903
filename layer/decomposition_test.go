package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsaulue/Gustave-sub001/fgraph"
	"github.com/vsaulue/Gustave-sub001/layer"
	"github.com/vsaulue/Gustave-sub001/vecmath"
)

// buildTwoTowerScene reproduces the reference DepthDecomposition /
// LayerDecomposition scenario: two foundation towers (x==2 and x==4)
// bridged at y==1 and y==3, plus one unreachable node. Node layout (by
// insertion order, matching the original fixture):
//
//	0: unreachable
//	1: x2y0(foundation)  2: x2y1  3: x2y2  4: x2y3  5: x2y4
//	6: x3y1              7: x3y3
//	8: x4y0(foundation)  9: x4y1  10: x4y2  11: x4y3
func buildTwoTowerScene(t *testing.T) *fgraph.F1Structure {
	t.Helper()
	s := fgraph.NewStructure()
	stress, err := vecmath.NewStress(1000.0, 200.0, 100.0)
	require.NoError(t, err)
	addNode := func(isFoundation bool) fgraph.NodeIndex {
		id, err := s.AddNode(1000, isFoundation)
		require.NoError(t, err)
		return id
	}
	axis := func(v vecmath.Vec3) vecmath.UnitVec3 {
		u, err := vecmath.Normalize(v)
		require.NoError(t, err)
		return u
	}
	plusX, minusX := axis(vecmath.NewVec3(1, 0, 0)), axis(vecmath.NewVec3(-1, 0, 0))
	plusY, minusY := axis(vecmath.NewVec3(0, 1, 0)), axis(vecmath.NewVec3(0, -1, 0))

	_ = addNode(false) // unreachable
	x2y0 := addNode(true)
	x2y1 := addNode(false)
	x2y2 := addNode(false)
	x2y3 := addNode(false)
	x2y4 := addNode(false)
	x3y1 := addNode(false)
	x3y3 := addNode(false)
	x4y0 := addNode(true)
	x4y1 := addNode(false)
	x4y2 := addNode(false)
	x4y3 := addNode(false)

	addLink := func(local, other fgraph.NodeIndex, normal vecmath.UnitVec3) {
		_, err := s.AddLink(local, other, normal, stress)
		require.NoError(t, err)
	}
	addLink(x2y0, x2y1, plusY)
	addLink(x2y1, x2y2, plusY)
	addLink(x2y2, x2y3, plusY)
	addLink(x2y3, x2y4, plusY)
	addLink(x4y3, x4y2, minusY)
	addLink(x4y2, x4y1, minusY)
	addLink(x4y1, x4y0, minusY)
	addLink(x2y1, x3y1, plusX)
	addLink(x3y1, x4y1, plusX)
	addLink(x4y3, x3y3, minusX)
	addLink(x3y3, x2y3, minusX)

	f, err := fgraph.Build(s, vecmath.NewVec3(0, -10, 0))
	require.NoError(t, err)
	return f
}

func nodeSet(ids ...fgraph.NodeIndex) map[fgraph.NodeIndex]bool {
	m := make(map[fgraph.NodeIndex]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func asSet(nodes []fgraph.NodeIndex) map[fgraph.NodeIndex]bool {
	return nodeSet(nodes...)
}

func TestLayerStructureMatchesReferenceDecomposition(t *testing.T) {
	f := buildTwoTowerScene(t)
	const (
		x2y0 = 1
		x2y1 = 2
		x2y2 = 3
		x2y3 = 4
		x2y4 = 5
		x3y1 = 6
		x3y3 = 7
		x4y0 = 8
		x4y1 = 9
		x4y2 = 10
		x4y3 = 11
	)

	dd := layer.BuildDepthDecomposition(f)
	require.Equal(t, 11, dd.ReachedCount)

	ls := layer.BuildLayerStructure(f, dd)
	require.Equal(t, 11, ls.ReachedCount())
	layers := ls.Layers()
	require.Len(t, layers, 7)

	const blockWeight = 10000.0 // mass 1000 * |g| 10

	// Layer 0 sits on the foundations.
	require.True(t, layers[0].IsFoundation)
	require.Equal(t, asSet([]fgraph.NodeIndex{x2y0, x4y0}), asSet(layers[0].Nodes))
	require.InDelta(t, 11*blockWeight, layers[0].CumulatedWeight, 1e-6)

	require.False(t, layers[1].IsFoundation)
	require.Equal(t, 0, layers[1].LowLayerID)
	require.Equal(t, asSet([]fgraph.NodeIndex{x2y1, x4y1}), asSet(layers[1].Nodes))
	require.InDelta(t, 9*blockWeight, layers[1].CumulatedWeight, 1e-6)

	require.Equal(t, 1, layers[2].LowLayerID)
	require.Equal(t, asSet([]fgraph.NodeIndex{x3y1}), asSet(layers[2].Nodes))
	require.InDelta(t, blockWeight, layers[2].CumulatedWeight, 1e-6)

	require.Equal(t, 1, layers[3].LowLayerID)
	require.Equal(t, asSet([]fgraph.NodeIndex{x2y2, x4y2}), asSet(layers[3].Nodes))
	require.InDelta(t, 6*blockWeight, layers[3].CumulatedWeight, 1e-6)

	require.Equal(t, 3, layers[4].LowLayerID)
	require.Equal(t, asSet([]fgraph.NodeIndex{x2y3, x4y3}), asSet(layers[4].Nodes))
	require.InDelta(t, 4*blockWeight, layers[4].CumulatedWeight, 1e-6)

	require.Equal(t, 4, layers[5].LowLayerID)
	require.Equal(t, asSet([]fgraph.NodeIndex{x3y3}), asSet(layers[5].Nodes))
	require.InDelta(t, blockWeight, layers[5].CumulatedWeight, 1e-6)

	require.Equal(t, 4, layers[6].LowLayerID)
	require.Equal(t, asSet([]fgraph.NodeIndex{x2y4}), asSet(layers[6].Nodes))
	require.InDelta(t, blockWeight, layers[6].CumulatedWeight, 1e-6)

	layerOfNode := ls.LayerOfNode()
	require.Equal(t, -1, layerOfNode[0]) // unreachable
	require.Equal(t, 0, layerOfNode[x2y0])
	require.Equal(t, 1, layerOfNode[x2y1])
	require.Equal(t, 3, layerOfNode[x2y2])
	require.Equal(t, 4, layerOfNode[x2y3])
	require.Equal(t, 6, layerOfNode[x2y4])
	require.Equal(t, 2, layerOfNode[x3y1])
	require.Equal(t, 5, layerOfNode[x3y3])
	require.Equal(t, 0, layerOfNode[x4y0])
	require.Equal(t, 1, layerOfNode[x4y1])
	require.Equal(t, 3, layerOfNode[x4y2])
	require.Equal(t, 4, layerOfNode[x4y3])
}

func TestLayerStructureLowContactsCrossExactlyOneLayerDown(t *testing.T) {
	f := buildTwoTowerScene(t)
	dd := layer.BuildDepthDecomposition(f)
	ls := layer.BuildLayerStructure(f, dd)
	layerOfNode := ls.LayerOfNode()

	for id, l := range ls.Layers() {
		for _, lc := range ls.LowContactsOf(id) {
			require.Equal(t, id, layerOfNode[lc.LocalNodeID])
			require.Less(t, layerOfNode[lc.Contact.OtherNodeID], id)
			require.Equal(t, l.LowLayerID, layerOfNode[lc.Contact.OtherNodeID])
		}
	}
}
